package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// UpdateNoteInput represents the input for note updates. Nil fields are
// left untouched.
type UpdateNoteInput struct {
	NoteID  int64
	Title   *string
	Content *string
	Tag     *entity.NoteTag
	Remark  *bool
	Image   *string
	Date    *time.Time
}

// UpdateNoteOutput represents the output of note updates.
type UpdateNoteOutput struct {
	Note *entity.Note
}

// UpdateNoteUseCase handles note update logic.
type UpdateNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewUpdateNoteUseCase creates a new UpdateNoteUseCase instance.
func NewUpdateNoteUseCase(noteRepo adapter.NoteRepository) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note update.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, input UpdateNoteInput) (*UpdateNoteOutput, error) {
	note, err := uc.noteRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return nil, domainerror.NewNoteError(
				domainerror.ErrCodeNoteNotFound,
				"note not found",
				domainerror.ErrNoteNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if input.Tag != nil {
		if !entity.IsValidNoteTag(*input.Tag) {
			return nil, domainerror.NewNoteError(
				domainerror.ErrCodeInvalidNoteTag,
				fmt.Sprintf("note tag must be one of %v", entity.NoteTags),
				domainerror.ErrInvalidNoteTag,
			)
		}
		note.Tag = *input.Tag
	}
	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.Remark != nil {
		note.Remark = *input.Remark
	}
	if input.Image != nil {
		note.Image = input.Image
	}
	if input.Date != nil {
		note.Date = *input.Date
	}

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &UpdateNoteOutput{Note: note}, nil
}
