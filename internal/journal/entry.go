// Package journal provides the entry schema, validation, and loading for Journey backups.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmpop/journey2html/internal/config"
)

// titleWordCount is how many leading words of the body form a derived title.
const titleWordCount = 5

// Entry represents one journal entry from a Journey backup.
// Entries are immutable once loaded; every run is a full re-render.
type Entry struct {
	Text        string   `json:"text"`
	Photos      []string `json:"photos"`
	Address     string   `json:"address,omitempty"`
	DateJournal int64    `json:"date_journal"`

	// File is the base name of the source JSON file. Set by the loader,
	// never serialized.
	File string `json:"-"`
}

// ValidationError is returned when entry validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// Validate checks that the required fields are present.
// text and date_journal are required for an entry to render meaningfully;
// photos and address are optional and degrade gracefully.
func (e *Entry) Validate() error {
	var missing []string
	if e.Text == "" {
		missing = append(missing, "text")
	}
	if e.DateJournal == 0 {
		missing = append(missing, "date_journal")
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing required fields",
		}
	}

	return nil
}

// FromJSON deserializes an entry from a Journey backup record.
// Photos is normalized to an empty slice, never nil.
func FromJSON(data []byte) (*Entry, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parsing entry JSON: %w", err)
	}

	if entry.Photos == nil {
		entry.Photos = []string{}
	}

	return &entry, nil
}

// Time returns the entry timestamp. date_journal carries POSIX milliseconds;
// the sub-second remainder is discarded.
func (e *Entry) Time() time.Time {
	return time.Unix(e.DateJournal/1000, 0)
}

// DisplayDate converts date_journal to the configured display string.
// The conversion is deterministic: the same millisecond value always
// yields the same string within a run.
func (e *Entry) DisplayDate(format config.DateFormat) string {
	t := e.Time()
	if format == config.DateISO {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("January 02, 2006 15:04")
}

// Title returns the heading for the entry block: either the formatted date
// or the first few words of the body, depending on the configured source.
func (e *Entry) Title(source config.TitleSource, format config.DateFormat) string {
	if source == config.TitleText {
		words := strings.Fields(e.Text)
		if len(words) > titleWordCount {
			words = words[:titleWordCount]
		}
		if len(words) > 0 {
			return strings.Join(words, " ")
		}
	}
	return e.DisplayDate(format)
}
