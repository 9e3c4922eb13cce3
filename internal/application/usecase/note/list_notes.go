// Package note contains journal note use cases.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/finly/backend/internal/application/adapter"
	"github.com/finly/backend/internal/domain/entity"
)

// ListNotesInput represents the input for note listing. An unknown tag is
// ignored rather than rejected.
type ListNotesInput struct {
	Tag   *entity.NoteTag
	Since *time.Time
}

// ListNotesOutput represents the output of note listing.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// ListNotesUseCase handles note listing logic.
type ListNotesUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(noteRepo adapter.NoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
	}
}

// Execute retrieves notes ordered by date descending.
func (uc *ListNotesUseCase) Execute(ctx context.Context, input ListNotesInput) (*ListNotesOutput, error) {
	tag := input.Tag
	if tag != nil && !entity.IsValidNoteTag(*tag) {
		tag = nil
	}

	notes, err := uc.noteRepo.List(ctx, tag, input.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return &ListNotesOutput{Notes: notes}, nil
}
