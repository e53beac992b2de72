package quiz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoQuestionEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine([]domain.Question{
		{Text: "First?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
		{Text: "Second?", Options: []string{"e", "f", "g", "h"}, CorrectAnswer: 3},
	})
	require.NoError(t, err)
	return e
}

func TestPlay(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "perfect run",
			input:    "2\n\n4\n\nq\n",
			contains: []string{"Question 1/2: First?", "Question 2/2: Second?", "Your score: 2/2"},
		},
		{
			name:     "one wrong",
			input:    "1\n\n4\n\nq\n",
			contains: []string{"Your score: 1/2"},
		},
		{
			name:     "advance needs a selection",
			input:    "\nq\n",
			contains: []string{"Select an option first."},
		},
		{
			name:     "rejects bad option",
			input:    "9\nfoo\nq\n",
			contains: []string{"Enter a number between 1 and 4."},
		},
		{
			name:     "changing the selection before advancing",
			input:    "1\n2\n\n4\n\nq\n",
			contains: []string{" * 2) b", "Your score: 2/2"},
		},
		{
			name:     "restart after finishing",
			input:    "2\n\n4\n\nr\n1\n\n1\n\nq\n",
			contains: []string{"Your score: 2/2", "Your score: 0/2"},
		},
		{
			name:     "input ends mid quiz",
			input:    "2\n",
			contains: []string{" * 2) b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := Play(twoQuestionEngine(t), strings.NewReader(tc.input), &out)
			require.NoError(t, err)
			for _, want := range tc.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
