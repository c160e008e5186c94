package entity

import "time"

// Note is a free-standing scratchpad entry. Notes are global: they carry no
// owner and are readable and writable without authentication.
type Note struct {
	ID        int64     // Auto-incrementing identifier for the note.
	Title     string    // Short title shown in listings.
	Content   string    // Free-form body text.
	CreatedAt time.Time // Timestamp of when this note was created.
}
