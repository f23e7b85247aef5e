// Package tags writes ID3v2 metadata into prepared audio files.
package tags

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2/v2"
)

// Frame is the tag triple embedded into an audio file.
type Frame struct {
	Title  string
	Artist string
	Year   int
}

// TaggingError reports a failed tag write. The file must be treated as
// unusable for delivery.
type TaggingError struct {
	Err error
}

func (e *TaggingError) Error() string { return "tagging: " + e.Err.Error() }
func (e *TaggingError) Unwrap() error { return e.Err }

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the frame into the MP3 at path, overwriting prior tags.
func (w *Writer) Write(frame Frame, path string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return &TaggingError{Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(frame.Title)
	tag.SetArtist(frame.Artist)
	tag.SetYear(strconv.Itoa(frame.Year))

	if err := tag.Save(); err != nil {
		return &TaggingError{Err: fmt.Errorf("save %s: %w", path, err)}
	}
	return nil
}
