// Package main provides the entry point for the journey2html CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/envfile"
	"github.com/dmpop/journey2html/internal/logger"
	"github.com/dmpop/journey2html/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// persistentString reads a string persistent flag from the command hierarchy.
// Returns the empty string if the flag is not registered (standalone commands
// in tests).
func persistentString(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// newPrinter builds the Printer for a command from the persistent flags.
func newPrinter(cmd *cobra.Command) *output.Printer {
	isTTY := output.ResolveColorMode(persistentString(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// newLogger builds the pipeline logger from the --verbosity persistent flag.
// JOURNEY2HTML_VERBOSITY applies when the flag is left at its default.
// Log lines go to stderr so stdout stays clean for --json consumers.
func newLogger(cmd *cobra.Command) *logger.Logger {
	verbosity := persistentString(cmd, "verbosity")
	if env := os.Getenv("JOURNEY2HTML_VERBOSITY"); env != "" && !flagChanged(cmd, "verbosity") {
		verbosity = env
	}
	return logger.New(cmd.ErrOrStderr(), verbosity)
}

// flagChanged reports whether a flag was set explicitly on the command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	return flag != nil && flag.Changed
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the journey2html CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journey2html",
		Short: "Convert Journey journal backups to a static HTML page",
		Long: `journey2html - Generate a single static HTML page from a Journey backup.

Takes a Journey backup ZIP (or a directory of per-entry JSON files) and
renders every entry into one HTML document: a heading per entry, the
address when present, a photo gallery, and the body text converted from
Markdown.

The run is all-or-nothing. A malformed entry aborts with exit code 10
and no output; filesystem problems (missing backup, pre-existing
destination) abort with exit code 20.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'journey2html --help' for usage")
				printer.Error(err)
				return err
			}
			// Otherwise show help
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so presentation overrides travel with a
	// backup directory. Environment variables always take precedence over
	// file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	// Persistent flags available to all subcommands
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("verbosity", "info", "Log verbosity: quiet, info, or debug")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, or never")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-backup override, gitignored)
//  2. $CWD/.env         (per-backup)
//  3. ~/.config/journey2html/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}
