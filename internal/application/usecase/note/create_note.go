package note

import (
	"context"
	"fmt"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
	domainerror "github.com/finly/backend/internal/domain/error"
)

// CreateNoteInput represents the input for note creation.
type CreateNoteInput struct {
	Title   string
	Content string
	Tag     entity.NoteTag
	Remark  bool
	Image   *string
	Date    time.Time
}

// CreateNoteOutput represents the output of note creation.
type CreateNoteOutput struct {
	Note *entity.Note
}

// CreateNoteUseCase handles note creation logic.
type CreateNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase instance.
func NewCreateNoteUseCase(noteRepo adapter.NoteRepository) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note creation.
func (uc *CreateNoteUseCase) Execute(ctx context.Context, input CreateNoteInput) (*CreateNoteOutput, error) {
	if !entity.IsValidNoteTag(input.Tag) {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeInvalidNoteTag,
			fmt.Sprintf("note tag must be one of %v", entity.NoteTags),
			domainerror.ErrInvalidNoteTag,
		)
	}

	note := &entity.Note{
		Title:     input.Title,
		Content:   input.Content,
		Tag:       input.Tag,
		Remark:    input.Remark,
		Image:     input.Image,
		Date:      input.Date,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteOutput{Note: note}, nil
}
