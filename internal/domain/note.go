package domain

// Note is a user-authored title/content pair persisted locally.
type Note struct {
	ID      int64  `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}

// NoteInput carries the editable fields of a note.
type NoteInput struct {
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
}
