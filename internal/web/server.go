package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/conorfennell/notehash/internal/auth"
	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/notes"
	"github.com/conorfennell/notehash/internal/quiz"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Server holds the dependencies for the HTTP server.
type Server struct {
	notes    *notes.Service
	quiz     *quiz.Engine
	verifier auth.Verifier
	log      *zap.Logger
	router   *http.ServeMux
	handler  http.Handler
}

// NewServer creates and configures a new server. A nil verifier leaves the
// API open.
func NewServer(notesSvc *notes.Service, engine *quiz.Engine, verifier auth.Verifier, log *zap.Logger) *Server {
	s := &Server{
		notes:    notesSvc,
		quiz:     engine,
		verifier: verifier,
		log:      log,
		router:   http.NewServeMux(),
	}
	s.routes()
	s.handler = s.withRequestID(s.withAccessLog(s.withAuth(s.router)))
	return s
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// routes sets up the routing for the server.
func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealth())

	s.router.HandleFunc("GET /notes", s.handleListNotes())
	s.router.HandleFunc("POST /notes", s.handleCreateNote())
	s.router.HandleFunc("GET /notes/{id}", s.handleGetNote())
	s.router.HandleFunc("PUT /notes/{id}", s.handleUpdateNote())
	s.router.HandleFunc("DELETE /notes/{id}", s.handleDeleteNote())

	s.router.HandleFunc("GET /quiz/questions", s.handleGetQuestions())
	s.router.HandleFunc("POST /quiz/session", s.handleStartSession())
	s.router.HandleFunc("POST /quiz/session/select", s.handleSelectOption())
	s.router.HandleFunc("POST /quiz/session/advance", s.handleAdvance())
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// handleListNotes returns every note, newest first.
func (s *Server) handleListNotes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := s.notes.List(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func (s *Server) handleCreateNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.NoteInput
		if !s.decode(w, r, &in) {
			return
		}
		id, err := s.notes.Create(r.Context(), in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, domain.Note{ID: id, Title: in.Title, Content: in.Content})
	}
}

func (s *Server) handleGetNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.noteID(w, r)
		if !ok {
			return
		}
		note, err := s.notes.Get(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, note)
	}
}

func (s *Server) handleUpdateNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.noteID(w, r)
		if !ok {
			return
		}
		var in domain.NoteInput
		if !s.decode(w, r, &in) {
			return
		}
		updated, err := s.notes.Update(r.Context(), id, in)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if !updated {
			s.writeError(w, r, domain.NewNotFoundError("note not found"))
			return
		}
		writeJSON(w, http.StatusOK, domain.Note{ID: id, Title: in.Title, Content: in.Content})
	}
}

func (s *Server) handleDeleteNote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.noteID(w, r)
		if !ok {
			return
		}
		deleted, err := s.notes.Delete(r.Context(), id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if !deleted {
			s.writeError(w, r, domain.NewNotFoundError("note not found"))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// sessionResponse pairs a session with the question it is positioned on.
type sessionResponse struct {
	Session  quiz.Session     `json:"session"`
	Question *domain.Question `json:"question,omitempty"`
}

type sessionRequest struct {
	Session quiz.Session `json:"session"`
	Option  int          `json:"option"`
}

func (s *Server) handleGetQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.quiz.Questions())
	}
}

// handleStartSession returns a fresh session; it doubles as restart.
func (s *Server) handleStartSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.sessionResponse(s.quiz.Restart()))
	}
}

func (s *Server) handleSelectOption() http.HandlerFunc {
	return s.handleTransition(func(req sessionRequest) quiz.Action {
		return quiz.Action{Kind: quiz.ActionSelect, Option: req.Option}
	})
}

func (s *Server) handleAdvance() http.HandlerFunc {
	return s.handleTransition(func(sessionRequest) quiz.Action {
		return quiz.Action{Kind: quiz.ActionAdvance}
	})
}

// handleTransition checks the client's session and reduces it with the
// action built from the request.
func (s *Server) handleTransition(action func(sessionRequest) quiz.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if !s.decode(w, r, &req) {
			return
		}
		if err := s.quiz.Check(req.Session); err != nil {
			s.writeError(w, r, err)
			return
		}
		next := s.quiz.Reduce(req.Session, action(req))
		writeJSON(w, http.StatusOK, s.sessionResponse(next))
	}
}

func (s *Server) sessionResponse(session quiz.Session) sessionResponse {
	resp := sessionResponse{Session: session}
	if q, ok := s.quiz.Current(session); ok {
		resp.Question = &q
	}
	return resp
}

func (s *Server) noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, r, domain.NewValidationError(domain.FieldError{Field: "id", Rule: "numeric"}))
		return 0, false
	}
	return id, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, r, domain.NewError(domain.CodeValidation, "Invalid JSON body", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError renders err as a DomainError body with a matching status code.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		de = domain.NewError(domain.CodeInternal, "Internal server error", err)
	}
	status := statusFor(de.Code)
	if status >= http.StatusInternalServerError {
		s.log.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", string(de.Code)),
			zap.Error(err),
		)
	} else {
		s.log.Debug("Request rejected",
			zap.String("path", r.URL.Path),
			zap.String("code", string(de.Code)),
			zap.String("message", de.Message),
		)
	}
	writeJSON(w, status, de)
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeValidation, domain.CodeInvalidSession:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
