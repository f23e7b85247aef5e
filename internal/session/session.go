package session

import "surahbot/internal/tags"

// Mode selects which command set and validation rules are active.
type Mode int

const (
	ModeUnset Mode = iota
	ModeQuran
	ModeRegular
)

// State of the submission workflow.
type State int

const (
	StateIdle State = iota
	StateCollecting
	StateProcessing
	StateAwaitingColor
	StateAwaitingConfirm
)

// DefaultArtist is the performer preset applied in Quran mode and restored
// on a full reset.
const DefaultArtist = "Mahmoud Al-Hosary"

// Colors is the fixed marker set offered during review.
var Colors = []string{"🔵", "🟢", "🔴", "🟡", "🟣", "🟠", "🟥"}

// Session is the single mutable record tracking one in-progress submission.
type Session struct {
	Mode      Mode
	State     State
	Track     int    // Quran mode, 1-based surah number
	Verse     string // Quran mode, verse number or range
	Title     string // Regular mode
	Artist    string
	Color     string
	AudioPath string // prepared, tagged audio; owned by the session
	Caption   string // derived, never user-settable
	Tags      tags.Frame
}

// Review describes prepared audio presented for operator approval.
type Review struct {
	AudioPath  string
	FileName   string
	Caption    string
	NeedsColor bool
}
