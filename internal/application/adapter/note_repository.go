package adapter

import (
	"context"
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// NoteRepository defines the interface for note persistence operations.
type NoteRepository interface {
	// List retrieves all notes ordered by date descending, optionally
	// filtered by tag and by a minimum date.
	List(ctx context.Context, tag *entity.NoteTag, since *time.Time) ([]*entity.Note, error)

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Note, error)

	// Create persists a new note.
	Create(ctx context.Context, note *entity.Note) error

	// Update updates an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes a note.
	Delete(ctx context.Context, id int64) error
}
