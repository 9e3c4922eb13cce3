package error

import "errors"

// Note domain errors.
var (
	// ErrNoteNotFound is returned when a note is not found in the system.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidNoteTag is returned when the note tag is invalid.
	ErrInvalidNoteTag = errors.New("invalid note tag")
)

// NoteErrorCode defines error codes for note errors.
// Format: NTE-XXYYYY where XX is category and YYYY is specific error.
type NoteErrorCode string

const (
	ErrCodeInvalidNoteTag    NoteErrorCode = "NTE-010001"
	ErrCodeMissingNoteFields NoteErrorCode = "NTE-010002"
	ErrCodeNoteNotFound      NoteErrorCode = "NTE-020001"
)

// NoteError represents a note error with code and message.
type NoteError struct {
	Code    NoteErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NoteError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NoteError) Unwrap() error {
	return e.Err
}

// NewNoteError creates a new NoteError with the given code and message.
func NewNoteError(code NoteErrorCode, message string, err error) *NoteError {
	return &NoteError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
