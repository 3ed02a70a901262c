// Package config provides the conversion options and configuration directory for journey2html.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the journey2html configuration directory.
//
// Resolution:
//   - $JOURNEY2HTML_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/journey2html if set (respects XDG on any platform)
//   - %AppData%/journey2html on Windows
//   - ~/.config/journey2html on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("JOURNEY2HTML_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "journey2html")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "journey2html")
		}
	}

	// macOS and Linux: ~/.config/journey2html
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "journey2html")
}
