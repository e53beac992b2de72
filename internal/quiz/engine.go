// Package quiz runs a single linear pass over a fixed set of multiple-choice
// questions. Sessions are plain values: every transition returns a new
// Session and leaves its argument untouched.
package quiz

import (
	"errors"
	"fmt"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/validate"
)

// NoSelection marks a session in which no option has been chosen yet.
const NoSelection = -1

// Session is the progress of one quiz attempt.
type Session struct {
	Index     int  `json:"index"`
	Selected  int  `json:"selected"`
	Score     int  `json:"score"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

// ActionKind names a transition understood by Reduce.
type ActionKind string

const (
	ActionSelect  ActionKind = "select"
	ActionAdvance ActionKind = "advance"
	ActionRestart ActionKind = "restart"
)

// Action is a single user intent. Option is only read by ActionSelect.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Option int        `json:"option"`
}

// Engine owns an immutable, ordered question set.
type Engine struct {
	questions []domain.Question
}

// NewEngine validates questions and copies them into a new Engine.
func NewEngine(questions []domain.Question) (*Engine, error) {
	if len(questions) == 0 {
		return nil, errors.New("quiz needs at least one question")
	}
	v := validate.New()
	qs := make([]domain.Question, len(questions))
	for i, q := range questions {
		if err := validate.Struct(v, q); err != nil {
			return nil, fmt.Errorf("question %d (%q): %w", i+1, q.Text, err)
		}
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	return &Engine{questions: qs}, nil
}

// Questions returns a copy of the question set in its fixed order.
func (e *Engine) Questions() []domain.Question {
	qs := make([]domain.Question, len(e.questions))
	for i, q := range e.questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	return qs
}

// Len returns the number of questions.
func (e *Engine) Len() int {
	return len(e.questions)
}

// Start returns a fresh session positioned on the first question.
func (e *Engine) Start() Session {
	return Session{
		Index:    0,
		Selected: NoSelection,
		Score:    0,
		Total:    len(e.questions),
	}
}

// Restart discards s and returns a fresh session. It is valid from any state.
func (e *Engine) Restart() Session {
	return e.Start()
}

// Current returns the question s is positioned on. It reports false once the
// quiz is completed.
func (e *Engine) Current(s Session) (domain.Question, bool) {
	if s.Completed || s.Index < 0 || s.Index >= len(e.questions) {
		return domain.Question{}, false
	}
	q := e.questions[s.Index]
	q.Options = append([]string(nil), q.Options...)
	return q, true
}

// SelectOption records option as the current choice. Completed sessions and
// out-of-range options leave s unchanged.
func (e *Engine) SelectOption(s Session, option int) Session {
	q, ok := e.Current(s)
	if !ok || option < 0 || option >= len(q.Options) {
		return s
	}
	s.Selected = option
	return s
}

// Advance scores the current choice and moves to the next question, or
// completes the quiz after the last one. Without a selection it is a no-op.
func (e *Engine) Advance(s Session) Session {
	q, ok := e.Current(s)
	if !ok || s.Selected == NoSelection {
		return s
	}
	if s.Selected == q.CorrectAnswer {
		s.Score++
	}
	s.Selected = NoSelection
	if s.Index == len(e.questions)-1 {
		s.Completed = true
		return s
	}
	s.Index++
	return s
}

// Reduce applies a to s. Unknown actions leave s unchanged.
func (e *Engine) Reduce(s Session, a Action) Session {
	switch a.Kind {
	case ActionSelect:
		return e.SelectOption(s, a.Option)
	case ActionAdvance:
		return e.Advance(s)
	case ActionRestart:
		return e.Restart()
	default:
		return s
	}
}

// Check rejects sessions that no sequence of transitions on e could produce.
// Sessions received from clients must pass Check before being reduced.
func (e *Engine) Check(s Session) error {
	n := len(e.questions)
	switch {
	case s.Total != n:
		return domain.NewInvalidSessionError(fmt.Sprintf("session total %d does not match %d questions", s.Total, n))
	case s.Index < 0 || s.Index >= n:
		return domain.NewInvalidSessionError(fmt.Sprintf("question index %d out of range", s.Index))
	case s.Selected != NoSelection && (s.Selected < 0 || s.Selected >= domain.OptionsPerQuestion):
		return domain.NewInvalidSessionError(fmt.Sprintf("selected option %d out of range", s.Selected))
	case s.Completed && s.Index != n-1:
		return domain.NewInvalidSessionError("completed session must rest on the last question")
	case s.Completed && s.Selected != NoSelection:
		return domain.NewInvalidSessionError("completed session cannot hold a selection")
	case s.Score < 0:
		return domain.NewInvalidSessionError("score cannot be negative")
	case !s.Completed && s.Score > s.Index:
		return domain.NewInvalidSessionError("score exceeds answered questions")
	case s.Completed && s.Score > n:
		return domain.NewInvalidSessionError("score exceeds question count")
	}
	return nil
}
