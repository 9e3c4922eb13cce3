package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
	"github.com/finly/backend/internal/integration/persistence/model"
)

// noteRepository implements the adapter.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(db *gorm.DB) adapter.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// List retrieves notes ordered by date descending, optionally filtered by
// tag and by a minimum date.
func (r *noteRepository) List(ctx context.Context, tag *entity.NoteTag, since *time.Time) ([]*entity.Note, error) {
	query := r.db.WithContext(ctx).Order("date DESC")
	if tag != nil {
		query = query.Where("tag = ?", string(*tag))
	}
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var noteModels []model.NoteModel
	if err := query.Find(&noteModels).Error; err != nil {
		return nil, err
	}

	notes := make([]*entity.Note, len(noteModels))
	for i, nm := range noteModels {
		notes[i] = nm.ToEntity()
	}
	return notes, nil
}

// FindByID retrieves a note by its ID.
func (r *noteRepository) FindByID(ctx context.Context, id int64) (*entity.Note, error) {
	var noteModel model.NoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&noteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return noteModel.ToEntity(), nil
}

// Create creates a new note in the database.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	if err := r.db.WithContext(ctx).Create(noteModel).Error; err != nil {
		return err
	}
	note.ID = noteModel.ID
	return nil
}

// Update updates an existing note.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	result := r.db.WithContext(ctx).Save(model.NoteFromEntity(note))
	return result.Error
}

// Delete removes a note.
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.NoteModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrNoteNotFound
	}
	return nil
}
