// Package catalog holds the static surah reference table.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed surahs.json
var surahsJSON []byte

// Record is one entry of the table: the surah name in two languages.
type Record struct {
	NameEn string `json:"name_en"`
	NameRu string `json:"name_ru"`
}

var unknown = Record{NameEn: "Unknown"}

type Catalog struct {
	records []Record
}

// Load decodes the embedded table. Called once at startup.
func Load() (*Catalog, error) {
	var records []Record
	if err := json.Unmarshal(surahsJSON, &records); err != nil {
		return nil, fmt.Errorf("decode surah table: %w", err)
	}
	return &Catalog{records: records}, nil
}

// Lookup resolves a 1-based track number. Numbers outside the table map to
// the "Unknown" placeholder instead of failing.
func (c *Catalog) Lookup(track int) Record {
	if track < 1 || track > len(c.records) {
		return unknown
	}
	return c.records[track-1]
}

func (c *Catalog) Size() int {
	return len(c.records)
}
