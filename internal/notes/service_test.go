package notes

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/conorfennell/notehash/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeStore records calls and returns canned results.
type fakeStore struct {
	created  int
	affected int64
	err      error
}

func (f *fakeStore) CreateNote(ctx context.Context, title, content string) (int64, error) {
	f.created++
	return int64(f.created), f.err
}

func (f *fakeStore) ListNotes(ctx context.Context) ([]domain.Note, error) {
	return nil, f.err
}

func (f *fakeStore) FindNote(ctx context.Context, id int64) (*domain.Note, error) {
	return nil, f.err
}

func (f *fakeStore) UpdateNote(ctx context.Context, id int64, title, content string) (int64, error) {
	return f.affected, f.err
}

func (f *fakeStore) DeleteNote(ctx context.Context, id int64) (int64, error) {
	return f.affected, f.err
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, zaptest.NewLogger(t))
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	id, err := svc.Create(ctx, domain.NoteInput{Title: "Groceries", Content: "Milk, eggs"})
	require.NoError(t, err)

	notes, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Note{{ID: id, Title: "Groceries", Content: "Milk, eggs"}}, notes)

	ok, err := svc.Update(ctx, id, domain.NoteInput{Title: "Groceries", Content: "Bread"})
	require.NoError(t, err)
	assert.True(t, ok)

	note, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bread", note.Content)

	ok, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Get(ctx, id)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestServiceRejectsBlankInput(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{affected: 1}
	svc := NewService(store, zaptest.NewLogger(t))

	testCases := []struct {
		name string
		in   domain.NoteInput
	}{
		{"empty title", domain.NoteInput{Title: "", Content: "c"}},
		{"blank title", domain.NoteInput{Title: "   ", Content: "c"}},
		{"empty content", domain.NoteInput{Title: "t", Content: ""}},
		{"both blank", domain.NoteInput{Title: "\t", Content: "\n"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.in)
			assert.True(t, domain.IsCode(err, domain.CodeValidation))

			_, err = svc.Update(ctx, 1, tc.in)
			assert.True(t, domain.IsCode(err, domain.CodeValidation))
		})
	}
	assert.Equal(t, 0, store.created, "store must not be reached with invalid input")
}

func TestServiceUpdateMissing(t *testing.T) {
	svc := NewService(&fakeStore{affected: 0}, zaptest.NewLogger(t))

	ok, err := svc.Update(context.Background(), 42, domain.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServicePropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	storageErr := domain.NewStorageError("list", errors.New("database is locked"))
	svc := NewService(&fakeStore{err: storageErr}, zaptest.NewLogger(t))

	_, err := svc.List(ctx)
	assert.True(t, domain.IsCode(err, domain.CodeStorageUnavailable))

	_, err = svc.Delete(ctx, 1)
	assert.True(t, domain.IsCode(err, domain.CodeStorageUnavailable))

	_, err = svc.Get(ctx, 1)
	assert.True(t, domain.IsCode(err, domain.CodeStorageUnavailable))
}
