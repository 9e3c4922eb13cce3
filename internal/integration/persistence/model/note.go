package model

import (
	"time"

	"github.com/finly/backend/internal/domain/entity"
)

// NoteModel represents the notes table in the database.
type NoteModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	Tag       string    `gorm:"type:varchar(20);not null;index"`
	Remark    bool      `gorm:"default:false"`
	Image     *string   `gorm:"type:text"`
	Date      time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the NoteModel.
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	return &entity.Note{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Tag:       entity.NoteTag(m.Tag),
		Remark:    m.Remark,
		Image:     m.Image,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(note *entity.Note) *NoteModel {
	return &NoteModel{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tag:       string(note.Tag),
		Remark:    note.Remark,
		Image:     note.Image,
		Date:      note.Date,
		CreatedAt: note.CreatedAt,
	}
}
