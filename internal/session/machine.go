package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"surahbot/internal/catalog"
	"surahbot/internal/tags"
)

// Deps are the collaborators a Machine drives during media submissions.
type Deps struct {
	Fetcher   Fetcher
	Extractor Extractor
	Tags      TagWriter
	Publisher Publisher
	Catalog   *catalog.Catalog
	Scratch   Purger
	Dir       string // scratch directory for pipeline output files
	Now       func() time.Time
}

// Machine owns the single session and applies inbound events to it.
type Machine struct {
	deps Deps
	s    Session
}

func New(deps Deps) *Machine {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Machine{
		deps: deps,
		s:    Session{Artist: DefaultArtist, State: StateIdle},
	}
}

// Snapshot returns a copy of the current session, mainly for inspection.
func (m *Machine) Snapshot() Session { return m.s }

func (m *Machine) Mode() Mode { return m.s.Mode }

func (m *Machine) State() State { return m.s.State }

// SelectMode activates a mode and drops every mode-specific field of the
// previous one. Valid from any state.
func (m *Machine) SelectMode(mode Mode) {
	if m.s.AudioPath != "" {
		m.deps.Scratch.Purge()
	}
	m.s.Mode = mode
	m.s.State = StateCollecting
	m.s.Track = 0
	m.s.Verse = ""
	m.s.Title = ""
	m.s.Color = ""
	m.s.AudioPath = ""
	m.s.Caption = ""
	m.s.Tags = tags.Frame{}
	if mode == ModeQuran {
		m.s.Artist = DefaultArtist
	}
}

// SetTrack stores the surah number. Quran mode only.
func (m *Machine) SetTrack(raw string) (int, error) {
	if m.s.Mode != ModeQuran {
		return 0, ErrWrongMode
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, ErrBadTrack
	}
	m.s.Track = n
	return n, nil
}

// SetArtist stores the performer name. Valid once a mode is selected.
func (m *Machine) SetArtist(raw string) error {
	if m.s.Mode == ModeUnset {
		return ErrWrongMode
	}
	artist := strings.TrimSpace(raw)
	if artist == "" {
		return ErrEmptyInput
	}
	m.s.Artist = artist
	return nil
}

// SetTitle stores the track title. Regular mode only.
func (m *Machine) SetTitle(raw string) error {
	if m.s.Mode != ModeRegular {
		return ErrWrongMode
	}
	title := strings.TrimSpace(raw)
	if title == "" {
		return ErrEmptyInput
	}
	m.s.Title = title
	return nil
}

// SetVerse stores the verse number or range from free text. Quran mode
// only; the caller routes commands elsewhere.
func (m *Machine) SetVerse(raw string) error {
	if m.s.Mode != ModeQuran {
		return ErrWrongMode
	}
	verse := strings.TrimSpace(raw)
	if verse == "" {
		return ErrEmptyInput
	}
	m.s.Verse = verse
	return nil
}

// SubmitMedia runs the fetch → extract → tag pipeline on an uploaded file.
// Preconditions are checked before any I/O. On any pipeline failure the
// session is restored to its pre-submit value and scratch space is purged.
func (m *Machine) SubmitMedia(ctx context.Context, fileID string) (*Review, error) {
	if m.s.Mode == ModeUnset {
		return nil, ErrWrongMode
	}
	if missing := m.missingFields(); len(missing) > 0 {
		return nil, &PreconditionError{Missing: missing}
	}

	saved := m.s
	m.s.State = StateProcessing

	ext := ".mp3"
	if m.s.Mode == ModeQuran {
		ext = ".mp4"
	}
	work, err := m.deps.Fetcher.Fetch(ctx, fileID, ext)
	if err != nil {
		return nil, m.rollback(saved, err)
	}

	if m.s.Mode == ModeQuran {
		out := filepath.Join(m.deps.Dir, "audio_"+uuid.NewString()+".mp3")
		if err := m.deps.Extractor.Extract(ctx, work, out); err != nil {
			return nil, m.rollback(saved, err)
		}
		work = out
	}

	frame := tags.Frame{Artist: m.s.Artist, Year: m.deps.Now().Year()}
	if m.s.Mode == ModeQuran {
		rec := m.deps.Catalog.Lookup(m.s.Track)
		frame.Title = fmt.Sprintf("Surah %d %s (%s)", m.s.Track, rec.NameEn, m.s.Verse)
	} else {
		frame.Title = m.s.Title
	}
	if err := m.deps.Tags.Write(frame, work); err != nil {
		return nil, m.rollback(saved, err)
	}

	m.s.Tags = frame
	m.s.AudioPath = work

	if m.s.Mode == ModeQuran {
		m.s.State = StateAwaitingColor
		return &Review{AudioPath: work, NeedsColor: true}, nil
	}
	m.s.Caption = m.s.Artist + " - " + m.s.Title
	m.s.State = StateAwaitingConfirm
	return &Review{
		AudioPath: work,
		FileName:  fmt.Sprintf("%s - %s.mp3", m.s.Artist, m.s.Title),
		Caption:   m.s.Caption,
	}, nil
}

// ChooseColor records the marker and rebuilds the caption for review.
func (m *Machine) ChooseColor(symbol string) (*Review, error) {
	if m.s.State != StateAwaitingColor {
		return nil, ErrWrongState
	}
	if !validColor(symbol) {
		return nil, ErrBadColor
	}
	m.s.Color = symbol
	rec := m.deps.Catalog.Lookup(m.s.Track)
	m.s.Caption = quranCaption(symbol, m.s.Track, rec, m.s.Verse, m.s.Artist)
	m.s.State = StateAwaitingConfirm
	return &Review{
		AudioPath: m.s.AudioPath,
		FileName:  fmt.Sprintf("%s - %s - %s.mp3", m.s.Artist, rec.NameEn, m.s.Verse),
		Caption:   m.s.Caption,
	}, nil
}

// Confirm publishes the prepared audio to the channel. On a delivery
// failure the session is kept as is, so the operator can confirm again.
func (m *Machine) Confirm(ctx context.Context) error {
	if m.s.State != StateAwaitingConfirm {
		return ErrWrongState
	}
	if m.s.AudioPath == "" {
		return ErrNoAudio
	}
	err := m.deps.Publisher.Publish(ctx, m.s.AudioPath, filepath.Base(m.s.AudioPath), m.s.Caption)
	if err != nil {
		return err
	}
	m.deps.Scratch.Purge()
	m.resetSubmission()
	return nil
}

// Cancel abandons the current review. Mode and artist carry over.
func (m *Machine) Cancel() error {
	if m.s.State != StateAwaitingColor && m.s.State != StateAwaitingConfirm {
		return ErrWrongState
	}
	m.deps.Scratch.Purge()
	m.resetSubmission()
	return nil
}

// Reset clears everything including the mode and restores the default
// artist. Valid from any state.
func (m *Machine) Reset() {
	m.deps.Scratch.Purge()
	m.s = Session{Artist: DefaultArtist, State: StateIdle}
}

// resetSubmission drops the per-submission fields but keeps mode and
// artist, a carry-over convenience for repeated submissions.
func (m *Machine) resetSubmission() {
	m.s.Track = 0
	m.s.Verse = ""
	m.s.Color = ""
	m.s.AudioPath = ""
	m.s.Caption = ""
	m.s.Title = ""
	m.s.Tags = tags.Frame{}
	m.s.State = StateCollecting
}

func (m *Machine) rollback(saved Session, err error) error {
	m.s = saved
	m.deps.Scratch.Purge()
	return err
}

func (m *Machine) missingFields() []string {
	var missing []string
	switch m.s.Mode {
	case ModeQuran:
		if m.s.Track == 0 {
			missing = append(missing, FieldTrack)
		}
		if m.s.Verse == "" {
			missing = append(missing, FieldVerse)
		}
	case ModeRegular:
		if m.s.Title == "" {
			missing = append(missing, FieldTitle)
		}
		if m.s.Artist == "" {
			missing = append(missing, FieldArtist)
		}
	}
	return missing
}

func validColor(symbol string) bool {
	for _, c := range Colors {
		if c == symbol {
			return true
		}
	}
	return false
}
