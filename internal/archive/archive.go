// Package archive resolves a backup source into a directory of entry files.
//
// A source is either a directory that already holds the per-entry .json
// files, or a Journey backup ZIP. ZIP sources are expanded into a sibling
// directory named after the archive: "journey-foo.zip" becomes "journey-foo".
// The extraction target must not exist yet; the converter never overwrites.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmpop/journey2html/internal/logger"
	"github.com/dmpop/journey2html/internal/output"
)

// Resolve ensures a directory containing the backup's entry files exists and
// returns its path. Directory sources pass through untouched; ZIP sources are
// extracted first. All failures are filesystem errors that abort the run
// before any entry is loaded.
func Resolve(source string, log *logger.Logger) (string, error) {
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", output.NewFilesystemError("backup " + source + " does not exist")
		}
		return "", output.NewFilesystemErrorWithCause("inspecting backup "+source, err)
	}

	if info.IsDir() {
		log.Debug("source is a directory, skipping extraction", "dir", source)
		return source, nil
	}

	dest := DerivedDir(source)
	if _, err := os.Stat(dest); err == nil {
		return "", output.NewFilesystemError("directory " + dest + " already exists")
	}

	if err := extract(source, dest); err != nil {
		return "", err
	}

	log.Info("archive expanded", "zip", source, "dir", dest)
	return dest, nil
}

// DerivedDir returns the extraction directory for an archive path:
// the archive name with its extension stripped.
func DerivedDir(zipPath string) string {
	return strings.TrimSuffix(zipPath, filepath.Ext(zipPath))
}

// extract expands every member of the archive into dest.
func extract(zipPath, dest string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return output.NewFilesystemErrorWithCause("opening archive "+zipPath+": "+err.Error(), err)
	}
	defer reader.Close() //nolint:errcheck // best-effort close on read-only archive

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return output.NewFilesystemErrorWithCause("creating directory "+dest, err)
	}

	for _, member := range reader.File {
		if err := extractMember(member, dest); err != nil {
			return err
		}
	}

	return nil
}

// extractMember writes a single archive member under dest.
// Member paths that escape dest are rejected.
func extractMember(member *zip.File, dest string) error {
	target := filepath.Join(dest, member.Name) //nolint:gosec // checked below
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return output.NewFilesystemError("archive member escapes destination: " + member.Name)
	}

	if member.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return output.NewFilesystemErrorWithCause("creating directory "+target, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return output.NewFilesystemErrorWithCause("creating directory for "+target, err)
	}

	src, err := member.Open()
	if err != nil {
		return output.NewFilesystemErrorWithCause("reading archive member "+member.Name, err)
	}
	defer src.Close() //nolint:errcheck // best-effort close on read-only member

	dst, err := os.Create(target)
	if err != nil {
		return output.NewFilesystemErrorWithCause("creating file "+target, err)
	}

	if _, err := io.Copy(dst, src); err != nil { //nolint:gosec // one-shot local extraction
		_ = dst.Close()
		return output.NewFilesystemErrorWithCause("extracting "+member.Name, err)
	}

	if err := dst.Close(); err != nil {
		return output.NewFilesystemErrorWithCause("closing "+target, err)
	}
	return nil
}
