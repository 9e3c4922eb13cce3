package dto

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for note creation.
type CreateNoteRequest struct {
	Title   string  `json:"title" binding:"required,max=200"`
	Content string  `json:"content" binding:"required"`
	Tag     string  `json:"tag" binding:"required"`
	Remark  bool    `json:"remark,omitempty"`
	Image   *string `json:"image,omitempty"`
	Date    string  `json:"date" binding:"required"`
}

// UpdateNoteRequest represents the request body for note update.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content *string `json:"content,omitempty"`
	Tag     *string `json:"tag,omitempty"`
	Remark  *bool   `json:"remark,omitempty"`
	Image   *string `json:"image,omitempty"`
	Date    *string `json:"date,omitempty"`
}

// NoteResponse represents a single note in API responses.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag"`
	Remark    bool      `json:"remark"`
	Image     *string   `json:"image,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNoteResponse converts a domain Note entity to a response DTO.
func ToNoteResponse(note *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tag:       string(note.Tag),
		Remark:    note.Remark,
		Image:     note.Image,
		Date:      note.Date.Format(DateLayout),
		CreatedAt: note.CreatedAt,
	}
}

// ToNoteListResponse converts notes to a list of response DTOs.
func ToNoteListResponse(notes []*entity.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ToNoteResponse(n)
	}
	return responses
}
