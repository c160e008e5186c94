package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
)

// NoteInput defines the data for creating or replacing a note.
type NoteInput struct {
	Title   string
	Content string
}

// NoteUsecase defines the interface for the global notes scratchpad.
type NoteUsecase interface {
	Create(ctx context.Context, input NoteInput) (*entity.Note, error)
	List(ctx context.Context) ([]*entity.Note, error)
	Get(ctx context.Context, id int64) (*entity.Note, error)
	Update(ctx context.Context, id int64, input NoteInput) (*entity.Note, error)
	Delete(ctx context.Context, id int64) error
}
