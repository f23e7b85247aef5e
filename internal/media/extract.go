package media

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
)

// ExtractionError reports a failed transcoding run. No partial output is
// usable; the caller must discard the output file.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return "extraction: " + e.Err.Error() }
func (e *ExtractionError) Unwrap() error { return e.Err }

// Extractor strips the video stream from a container, keeping audio only.
type Extractor struct {
	ffmpegPath string
}

func NewExtractor() *Extractor {
	return &Extractor{ffmpegPath: "ffmpeg"}
}

func (e *Extractor) Extract(ctx context.Context, inPath, outPath string) error {
	cmd := exec.CommandContext(ctx, e.ffmpegPath, "-y", "-i", inPath, "-vn", outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.Printf("ffmpeg failed for %s: %v\n%s", inPath, err, stderr.String())
		return &ExtractionError{Err: fmt.Errorf("ffmpeg %s: %w", inPath, err)}
	}
	return nil
}
