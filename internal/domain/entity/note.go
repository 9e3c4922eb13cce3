package entity

import "time"

// NoteTag categorizes notes.
type NoteTag string

const (
	NoteTagCommon        NoteTag = "Common"
	NoteTagDrink         NoteTag = "Drink"
	NoteTagFriends       NoteTag = "Friends"
	NoteTagStudy         NoteTag = "Study"
	NoteTagWork          NoteTag = "Work"
	NoteTagLife          NoteTag = "Life"
	NoteTagEntertainment NoteTag = "Entertainment"
	NoteTagFamily        NoteTag = "Family"
	NoteTagHealth        NoteTag = "Health"
)

// NoteTags lists every valid note tag.
var NoteTags = []NoteTag{
	NoteTagCommon,
	NoteTagDrink,
	NoteTagFriends,
	NoteTagStudy,
	NoteTagWork,
	NoteTagLife,
	NoteTagEntertainment,
	NoteTagFamily,
	NoteTagHealth,
}

// IsValidNoteTag reports whether the given tag is a known note tag.
func IsValidNoteTag(t NoteTag) bool {
	for _, nt := range NoteTags {
		if t == nt {
			return true
		}
	}
	return false
}

// Note represents a free-form journal note.
type Note struct {
	ID        int64
	Title     string
	Content   string
	Tag       NoteTag
	Remark    bool
	Image     *string
	Date      time.Time
	CreatedAt time.Time
}
