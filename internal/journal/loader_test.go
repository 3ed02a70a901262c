package journal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/logger"
	"github.com/dmpop/journey2html/internal/output"
)

// writeEntryFile writes raw entry bytes into dir under the given name.
func writeEntryFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func newTestLoader() *Loader {
	return NewLoader(logger.New(io.Discard, "quiet"))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeEntryFile(t, dir, "b.json", `{"text": "second", "date_journal": 1509022007088}`)
	writeEntryFile(t, dir, "a.json", `{"text": "first", "photos": ["p1.jpg"], "address": "Berlin", "date_journal": 1409022007088}`)
	// Non-JSON backup assets are skipped
	writeEntryFile(t, dir, "photo.jpg", "not json")

	entries, err := newTestLoader().LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// os.ReadDir enumerates sorted by name
	if entries[0].File != "a.json" || entries[1].File != "b.json" {
		t.Errorf("order = [%s, %s], want [a.json, b.json]", entries[0].File, entries[1].File)
	}
	if entries[0].Address != "Berlin" {
		t.Errorf("Address = %q, want Berlin", entries[0].Address)
	}
	if len(entries[0].Photos) != 1 || entries[0].Photos[0] != "p1.jpg" {
		t.Errorf("Photos = %v", entries[0].Photos)
	}
	if entries[1].Photos == nil {
		t.Error("Photos should never be nil after load")
	}
}

func TestLoadAll_EmptyDir(t *testing.T) {
	entries, err := newTestLoader().LoadAll(t.TempDir())
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestLoadAll_MissingDir(t *testing.T) {
	_, err := newTestLoader().LoadAll(filepath.Join(t.TempDir(), "nope"))
	if output.GetExitCode(err) != output.ExitFilesystem {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitFilesystem)
	}
}

func TestLoadAll_MalformedEntryAbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeEntryFile(t, dir, "good.json", `{"text": "fine", "date_journal": 1509022007088}`)
	writeEntryFile(t, dir, "bad.json", `{"text": "broken`)

	_, err := newTestLoader().LoadAll(dir)
	if err == nil {
		t.Fatal("LoadAll() should fail on malformed entry")
	}

	var exitErr *output.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type = %T, want *output.ExitError", err)
	}
	if exitErr.Code != output.ExitEntryError {
		t.Errorf("exit code = %d, want %d", exitErr.Code, output.ExitEntryError)
	}
	if !strings.Contains(exitErr.Message, "bad.json") {
		t.Errorf("error should name the offending file: %q", exitErr.Message)
	}
}

func TestLoadAll_MissingRequiredFieldAbortsRun(t *testing.T) {
	dir := t.TempDir()
	writeEntryFile(t, dir, "nodate.json", `{"text": "no timestamp here"}`)

	_, err := newTestLoader().LoadAll(dir)
	if output.GetExitCode(err) != output.ExitEntryError {
		t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitEntryError)
	}
	if !strings.Contains(err.Error(), "nodate.json") {
		t.Errorf("error should name the offending file: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "date_journal") {
		t.Errorf("error should name the missing field: %q", err.Error())
	}
}

func TestSortEntries(t *testing.T) {
	entries := []*Entry{
		{File: "c.json", DateJournal: 100, Text: "newest file, oldest date"},
		{File: "a.json", DateJournal: 300, Text: "oldest file, newest date"},
		{File: "b.json", DateJournal: 200, Text: "middle"},
	}

	tests := []struct {
		name      string
		order     config.SortOrder
		wantFiles []string
	}{
		{name: "filename order", order: config.SortFilename, wantFiles: []string{"a.json", "b.json", "c.json"}},
		{name: "date order", order: config.SortDate, wantFiles: []string{"c.json", "b.json", "a.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := make([]*Entry, len(entries))
			copy(sorted, entries)
			SortEntries(sorted, tt.order)

			for i, want := range tt.wantFiles {
				if sorted[i].File != want {
					t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].File, want)
				}
			}
		})
	}
}
