package impl

import (
	"context"
	"strings"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/errors"
	"devfriend/internal/usecase"

	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo repository.NoteRepository
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{noteRepo: params.NoteRepo}
}

func (srv *noteService) Create(ctx context.Context, input usecase.NoteInput) (*entity.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	note := &entity.Note{
		Title:   input.Title,
		Content: input.Content,
	}
	if err := srv.noteRepo.Create(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to create note")
	}

	return note, nil
}

func (srv *noteService) List(ctx context.Context) ([]*entity.Note, error) {
	notes, err := srv.noteRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

func (srv *noteService) Get(ctx context.Context, id int64) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, domainerrors.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note")
	}

	return note, nil
}

func (srv *noteService) Update(ctx context.Context, id int64, input usecase.NoteInput) (*entity.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	note, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Title = input.Title
	note.Content = input.Content
	if err := srv.noteRepo.Update(ctx, note); err != nil {
		return nil, errors.Wrap(err, "failed to update note")
	}

	return note, nil
}

func (srv *noteService) Delete(ctx context.Context, id int64) error {
	if _, err := srv.Get(ctx, id); err != nil {
		return err
	}

	return errors.Wrap(srv.noteRepo.Delete(ctx, id), "failed to delete note")
}
