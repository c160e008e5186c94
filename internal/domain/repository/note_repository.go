package repository

import (
	"context"
	"errors"

	"devfriend/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note does not exist.
var ErrNoteNotFound = errors.New("note not found")

// NoteRepository defines the interface for note persistence.
type NoteRepository interface {
	// Create persists a new note and fills in the generated ID.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a single note by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Note, error)

	// FindAll retrieves every note, newest first.
	FindAll(ctx context.Context) ([]*entity.Note, error)

	// Update modifies a note's title and content.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id int64) error
}
