package render

import (
	"os"
	"path/filepath"

	"github.com/dmpop/journey2html/internal/output"
)

// WriteDocument serializes the rendered document to path as UTF-8.
// It refuses to overwrite an existing file and fails if the destination's
// parent directory does not exist; both are filesystem errors.
func WriteDocument(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return output.NewFilesystemError("output file " + path + " already exists")
	}

	parent := filepath.Dir(path)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return output.NewFilesystemError("output directory " + parent + " does not exist")
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return output.NewFilesystemErrorWithCause("writing "+path, err)
	}

	return nil
}
