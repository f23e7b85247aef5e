package media

import (
	"log"
	"os"
	"path/filepath"
)

// Scratch is the write-then-delete temp directory shared by the pipeline.
type Scratch struct {
	dir string
}

// NewScratch ensures the directory exists and wraps it.
func NewScratch(dir string) (*Scratch, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Scratch{dir: dir}, nil
}

func (s *Scratch) Dir() string {
	return s.dir
}

// Purge removes every file in the directory, best effort. Idempotent.
func (s *Scratch) Purge() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Printf("purge %s: %v", s.dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("purge %s: %v", path, err)
		}
	}
}
