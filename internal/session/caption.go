package session

import (
	"fmt"
	"regexp"
	"strings"

	"surahbot/internal/catalog"
)

var hashtagStrip = regexp.MustCompile(`[^a-zа-яё0-9\s]`)

// Hashtag flattens a display name into a channel hashtag: lowercase,
// punctuation dropped, words joined with '#'.
func Hashtag(s string) string {
	clean := hashtagStrip.ReplaceAllString(strings.ToLower(s), "")
	return "#" + strings.Join(strings.Fields(clean), "#")
}

// quranCaption builds the channel caption for a Quran-mode post. The word
// for "verse" is pluralized when the verse text is a range.
func quranCaption(color string, track int, rec catalog.Record, verse, artist string) string {
	ayat := "аят"
	if strings.Contains(verse, "-") {
		ayat = "аяты"
	}
	return fmt.Sprintf("%s Сура %d «%s (%s), %s %s» - %s\n\n#коран %s",
		color, track, rec.NameEn, rec.NameRu, ayat, verse, artist, Hashtag(rec.NameEn))
}
