package journal

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/logger"
	"github.com/dmpop/journey2html/internal/output"
)

// Loader reads every entry file from a resolved backup directory.
// Loading is all-or-nothing: one malformed entry aborts the whole run
// before any output is written.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates a Loader that reports progress to the given logger.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadAll parses every .json file in dir into entries, in file-name order.
// A parse or validation failure returns a malformed-entry error naming the
// offending file. Non-JSON files (photo assets in the backup) are ignored.
func (l *Loader) LoadAll(dir string) ([]*Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, output.NewFilesystemErrorWithCause("reading entry directory "+dir, err)
	}

	entries := []*Entry{}
	for _, dirent := range dirents {
		if dirent.IsDir() || !strings.HasSuffix(dirent.Name(), ".json") {
			continue
		}

		entry, err := l.loadFile(dir, dirent.Name())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	l.log.Info("entries loaded", "dir", dir, "count", len(entries))
	return entries, nil
}

// loadFile reads and validates a single entry file.
func (l *Loader) loadFile(dir, name string) (*Entry, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewFilesystemErrorWithCause("reading entry file "+path, err)
	}

	entry, err := FromJSON(data)
	if err != nil {
		return nil, output.NewEntryErrorWithCause("parsing entry file "+name+": "+err.Error(), err)
	}

	if err := entry.Validate(); err != nil {
		return nil, output.NewEntryError("entry file " + name + ": " + err.Error())
	}

	entry.File = name
	l.log.Debug("entry loaded", "file", name, "photos", len(entry.Photos))
	return entry, nil
}

// SortEntries orders entries according to the configured sort order.
// Filename order matches os.ReadDir enumeration and is the default;
// date order sorts by date_journal ascending. Both are stable and
// deterministic across platforms.
func SortEntries(entries []*Entry, order config.SortOrder) {
	switch order {
	case config.SortDate:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].DateJournal < entries[j].DateJournal
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].File < entries[j].File
		})
	}
}
