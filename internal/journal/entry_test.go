package journal

import (
	"testing"
	"time"

	"github.com/dmpop/journey2html/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		entry       Entry
		wantErr     bool
		wantMissing []string
	}{
		{
			name:  "valid entry",
			entry: Entry{Text: "Hello", DateJournal: 1509022007088},
		},
		{
			name:        "missing text",
			entry:       Entry{DateJournal: 1509022007088},
			wantErr:     true,
			wantMissing: []string{"text"},
		},
		{
			name:        "missing date",
			entry:       Entry{Text: "Hello"},
			wantErr:     true,
			wantMissing: []string{"date_journal"},
		},
		{
			name:        "missing both",
			entry:       Entry{},
			wantErr:     true,
			wantMissing: []string{"text", "date_journal"},
		},
		{
			name:  "address and photos are optional",
			entry: Entry{Text: "Hello", DateJournal: 1509022007088, Photos: nil, Address: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			valErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if len(valErr.Fields) != len(tt.wantMissing) {
				t.Fatalf("missing fields = %v, want %v", valErr.Fields, tt.wantMissing)
			}
			for i, field := range tt.wantMissing {
				if valErr.Fields[i] != field {
					t.Errorf("missing[%d] = %q, want %q", i, valErr.Fields[i], field)
				}
			}
		})
	}
}

func TestFromJSON(t *testing.T) {
	data := []byte(`{"text": "Hello **world**", "photos": [], "date_journal": 1509022007088}`)

	entry, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if entry.Text != "Hello **world**" {
		t.Errorf("Text = %q", entry.Text)
	}
	if entry.DateJournal != 1509022007088 {
		t.Errorf("DateJournal = %d, want 1509022007088", entry.DateJournal)
	}
	if entry.Photos == nil || len(entry.Photos) != 0 {
		t.Errorf("Photos = %v, want empty slice", entry.Photos)
	}
	if entry.Address != "" {
		t.Errorf("Address = %q, want empty", entry.Address)
	}
}

func TestFromJSON_PhotosNeverNil(t *testing.T) {
	// Some Journey variants omit the photos key entirely
	entry, err := FromJSON([]byte(`{"text": "No pictures today", "date_journal": 1509022007088}`))
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if entry.Photos == nil {
		t.Error("Photos should be normalized to an empty slice")
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty data", data: nil},
		{name: "truncated", data: []byte(`{"text": "Hel`)},
		{name: "not an object", data: []byte(`[1, 2, 3]`)},
		{name: "wrong date type", data: []byte(`{"text": "hi", "date_journal": "yesterday"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromJSON(tt.data); err == nil {
				t.Error("FromJSON() should fail")
			}
		})
	}
}

func TestTime_DropsMilliseconds(t *testing.T) {
	entry := Entry{Text: "x", DateJournal: 1509022007088}

	want := time.Unix(1509022007, 0)
	if got := entry.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestDisplayDate(t *testing.T) {
	entry := Entry{Text: "x", DateJournal: 1509022007088}
	ref := time.Unix(1509022007, 0)

	tests := []struct {
		name   string
		format config.DateFormat
		want   string
	}{
		{name: "long", format: config.DateLong, want: ref.Format("January 02, 2006 15:04")},
		{name: "iso", format: config.DateISO, want: ref.Format("2006-01-02 15:04:05")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entry.DisplayDate(tt.format); got != tt.want {
				t.Errorf("DisplayDate(%s) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestDisplayDate_Deterministic(t *testing.T) {
	entry := Entry{Text: "x", DateJournal: 1509022007088}

	first := entry.DisplayDate(config.DateISO)
	for range 10 {
		if got := entry.DisplayDate(config.DateISO); got != first {
			t.Fatalf("DisplayDate() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestTitle(t *testing.T) {
	entry := Entry{
		Text:        "A long walk through the old town of Girona",
		DateJournal: 1509022007088,
	}

	tests := []struct {
		name   string
		source config.TitleSource
		want   string
	}{
		{name: "date title", source: config.TitleDate, want: entry.DisplayDate(config.DateISO)},
		{name: "text prefix title", source: config.TitleText, want: "A long walk through the"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := entry.Title(tt.source, config.DateISO); got != tt.want {
				t.Errorf("Title(%s) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestTitle_ShortText(t *testing.T) {
	entry := Entry{Text: "Two words", DateJournal: 1509022007088}

	if got := entry.Title(config.TitleText, config.DateISO); got != "Two words" {
		t.Errorf("Title() = %q, want %q", got, "Two words")
	}
}
