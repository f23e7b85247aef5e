package session

import (
	"errors"
	"strings"
)

var (
	// ErrWrongMode rejects an operation not available in the active mode.
	ErrWrongMode = errors.New("operation not available in this mode")
	// ErrWrongState rejects an operation outside its workflow state.
	ErrWrongState = errors.New("operation not available in this state")
	// ErrEmptyInput rejects input that is empty after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrBadTrack rejects a track number that is not a positive integer.
	ErrBadTrack = errors.New("track number must be a positive integer")
	// ErrBadColor rejects a symbol outside the fixed color set.
	ErrBadColor = errors.New("unknown color symbol")
	// ErrNoAudio rejects a confirmation without a prepared audio file.
	ErrNoAudio = errors.New("no prepared audio to send")
)

// Field names used in PreconditionError.Missing.
const (
	FieldTrack  = "track"
	FieldVerse  = "verse"
	FieldTitle  = "title"
	FieldArtist = "artist"
)

// PreconditionError lists the fields still unset before media can be
// processed. No I/O has happened when it is returned.
type PreconditionError struct {
	Missing []string
}

func (e *PreconditionError) Error() string {
	return "missing fields: " + strings.Join(e.Missing, ", ")
}
