package postgres

import (
	"context"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// noteRepository implements the repository.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// Create persists a new note and fills in the generated ID.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteM := fromNoteDomain(note)

	if err := repo.db.WithContext(ctx).Create(noteM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt

	return nil
}

// FindByID retrieves a single note by its ID.
func (repo *noteRepository) FindByID(ctx context.Context, id int64) (*entity.Note, error) {
	var noteM model.NoteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&noteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by ID")
	}

	return toNoteDomain(&noteM), nil
}

// FindAll retrieves every note, newest first.
func (repo *noteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	var noteModels []*model.NoteModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&noteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notes")
	}

	notes := make([]*entity.Note, 0, len(noteModels))
	for _, noteM := range noteModels {
		notes = append(notes, toNoteDomain(noteM))
	}

	return notes, nil
}

// Update modifies a note's title and content.
func (repo *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"title":   note.Title,
			"content": note.Content,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note by its ID.
func (repo *noteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.NoteModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// toNoteDomain converts a persistence model to a domain entity.
func toNoteDomain(noteM *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:        noteM.ID,
		Title:     noteM.Title,
		Content:   noteM.Content,
		CreatedAt: noteM.CreatedAt,
	}
}

// fromNoteDomain converts a domain entity to a persistence model.
func fromNoteDomain(note *entity.Note) *model.NoteModel {
	return &model.NoteModel{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
	}
}
