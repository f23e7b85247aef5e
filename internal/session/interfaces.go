package session

import (
	"context"

	"surahbot/internal/tags"
)

// Fetcher downloads a remote media reference into the scratch directory and
// returns the local path.
type Fetcher interface {
	Fetch(ctx context.Context, fileID, ext string) (string, error)
}

// Extractor produces an audio-only file at outPath from the video container
// at inPath.
type Extractor interface {
	Extract(ctx context.Context, inPath, outPath string) error
}

// TagWriter writes a tag frame into an audio file in place.
type TagWriter interface {
	Write(frame tags.Frame, path string) error
}

// Publisher posts finished audio with its caption to the broadcast channel.
type Publisher interface {
	Publish(ctx context.Context, path, filename, caption string) error
}

// Purger wipes the scratch directory of temp artifacts.
type Purger interface {
	Purge()
}
