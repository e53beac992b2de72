package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/conorfennell/notehash/internal/domain"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sqlx.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(ctx context.Context, dsn string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, wrapStorage("open", fmt.Errorf("failed to open database: %w", err))
	}
	// One connection serialises every statement; the store assumes a single writer.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, wrapStorage("open", fmt.Errorf("failed to connect to database: %w", err))
	}

	if err := migrateUp(conn.DB); err != nil {
		conn.Close()
		return nil, wrapStorage("open", err)
	}

	return &DB{conn: conn}, nil
}

// New wraps an already prepared connection without touching the schema.
func New(conn *sqlx.DB) *DB {
	return &DB{conn: conn}
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// CreateNote inserts a new note and returns the id assigned to it.
func (db *DB) CreateNote(ctx context.Context, title, content string) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (title, content)
		VALUES (?, ?)
	`, title, content)
	if err != nil {
		return 0, wrapStorage("create", fmt.Errorf("failed to insert note: %w", err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapStorage("create", fmt.Errorf("failed to get last insert ID for note: %w", err))
	}
	return id, nil
}

// ListNotes retrieves every note, most recently created first.
func (db *DB) ListNotes(ctx context.Context) ([]domain.Note, error) {
	notes := []domain.Note{}
	err := db.conn.SelectContext(ctx, &notes, `
		SELECT id, title, content
		FROM notes
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, wrapStorage("list", fmt.Errorf("failed to get all notes: %w", err))
	}
	return notes, nil
}

// FindNote retrieves a single note by id. It returns nil when no note has that id.
func (db *DB) FindNote(ctx context.Context, id int64) (*domain.Note, error) {
	var n domain.Note
	err := db.conn.GetContext(ctx, &n, `
		SELECT id, title, content
		FROM notes WHERE id = ?
	`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Note not found
		}
		return nil, wrapStorage("find", fmt.Errorf("failed to find note %d: %w", id, err))
	}
	return &n, nil
}

// UpdateNote replaces the title and content of an existing note. It returns
// the number of rows affected, which is 0 when no note has that id.
func (db *DB) UpdateNote(ctx context.Context, id int64, title, content string) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?
		WHERE id = ?
	`, title, content, id)
	if err != nil {
		return 0, wrapStorage("update", fmt.Errorf("failed to update note %d: %w", id, err))
	}
	return rowsAffected(res, "update", id)
}

// DeleteNote removes a note by id. It returns the number of rows affected,
// which is 0 when no note has that id.
func (db *DB) DeleteNote(ctx context.Context, id int64) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `
		DELETE FROM notes
		WHERE id = ?
	`, id)
	if err != nil {
		return 0, wrapStorage("delete", fmt.Errorf("failed to delete note %d: %w", id, err))
	}
	return rowsAffected(res, "delete", id)
}

func rowsAffected(res sql.Result, op string, id int64) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapStorage(op, fmt.Errorf("failed to get rows affected for note %d: %w", id, err))
	}
	return n, nil
}

func wrapStorage(op string, err error) error {
	if domain.IsCode(err, domain.CodeStorageUnavailable) {
		return err
	}
	return domain.NewStorageError(op, err)
}
