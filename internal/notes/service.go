// Package notes validates and logs note mutations on top of a Store.
package notes

import (
	"context"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/validate"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Store is the persistence the service needs. *storage.DB implements it.
type Store interface {
	CreateNote(ctx context.Context, title, content string) (int64, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
	FindNote(ctx context.Context, id int64) (*domain.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (int64, error)
	DeleteNote(ctx context.Context, id int64) (int64, error)
}

type Service struct {
	store    Store
	validate *validator.Validate
	log      *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		validate: validate.New(),
		log:      log,
	}
}

// Create validates in and persists it, returning the new note's id.
func (s *Service) Create(ctx context.Context, in domain.NoteInput) (int64, error) {
	if err := validate.Struct(s.validate, in); err != nil {
		return 0, err
	}
	id, err := s.store.CreateNote(ctx, in.Title, in.Content)
	if err != nil {
		s.log.Error("Failed to create note", zap.Error(err))
		return 0, err
	}
	s.log.Debug("Note created", zap.Int64("id", id))
	return id, nil
}

// List returns every note, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.store.ListNotes(ctx)
	if err != nil {
		s.log.Error("Failed to list notes", zap.Error(err))
		return nil, err
	}
	return notes, nil
}

// Load is the initial read a composing application performs at startup.
func (s *Service) Load(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("Notes loaded", zap.Int("count", len(notes)))
	return notes, nil
}

// Get returns the note with the given id or a NotFound error.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.store.FindNote(ctx, id)
	if err != nil {
		s.log.Error("Failed to find note", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	if note == nil {
		return nil, domain.NewNotFoundError("note not found")
	}
	return note, nil
}

// Update replaces a note's title and content. It reports false when no note
// has that id; nothing is created in that case.
func (s *Service) Update(ctx context.Context, id int64, in domain.NoteInput) (bool, error) {
	if err := validate.Struct(s.validate, in); err != nil {
		return false, err
	}
	n, err := s.store.UpdateNote(ctx, id, in.Title, in.Content)
	if err != nil {
		s.log.Error("Failed to update note", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	s.log.Debug("Note updated", zap.Int64("id", id), zap.Int64("rows", n))
	return n > 0, nil
}

// Delete removes a note. It reports false when no note has that id.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.store.DeleteNote(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete note", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	s.log.Debug("Note deleted", zap.Int64("id", id), zap.Int64("rows", n))
	return n > 0, nil
}
