// Package envfile loads environment variables from .env files.
// Variables already present in the environment win over file values.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type pair struct {
	key   string
	value string
}

// Load reads a .env file and sets every variable that is not already
// present in the environment. A missing file is not an error.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	pairs, err := parse(file)
	if err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}

	for _, p := range pairs {
		if _, present := os.LookupEnv(p.key); present {
			continue
		}
		_ = os.Setenv(p.key, p.value)
	}
	return nil
}

// parse reads KEY=VALUE lines, skipping blanks and # comments.
func parse(r io.Reader) ([]pair, error) {
	var pairs []pair

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
		if key == "" {
			continue
		}

		pairs = append(pairs, pair{key: key, value: unquote(strings.TrimSpace(value))})
	}
	return pairs, scanner.Err()
}

// unquote strips one matching pair of single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
