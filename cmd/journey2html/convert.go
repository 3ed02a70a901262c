// Package main provides the entry point for the journey2html CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmpop/journey2html/internal/archive"
	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/journal"
	"github.com/dmpop/journey2html/internal/output"
	"github.com/dmpop/journey2html/internal/render"
)

// convertFlags holds the per-run presentation overrides.
type convertFlags struct {
	stylesheet  string
	titleSource string
	dateFormat  string
	sortOrder   string
	configFile  string
	plain       bool
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert <backup.zip|directory> [output.html]",
		Short: "Convert a backup to a single HTML page",
		Long: `Convert a Journey backup into one static HTML page.

A ZIP backup is expanded into a directory named after the archive
("journey-foo.zip" becomes "journey-foo/") and the page is written there
as index.html. A directory source is read in place. Neither the
extraction directory nor the output file may already exist.

Examples:
  journey2html convert journey-foo.zip                  # journey-foo/index.html
  journey2html convert ./entries/ diary.html            # explicit output file
  journey2html convert --plain journey-foo.zip          # keep Markdown literal
  journey2html convert --title-source text --sort date journey-foo.zip`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.stylesheet, "stylesheet", "", "Stylesheet URL or file linked from the page")
	cmd.Flags().StringVar(&flags.titleSource, "title-source", "", "Entry heading content: date or text")
	cmd.Flags().StringVar(&flags.dateFormat, "date-format", "", "Date display format: long or iso")
	cmd.Flags().StringVar(&flags.sortOrder, "sort", "", "Entry order: filename or date")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Config file (default: "+filepath.Join("$CONFIG_DIR", "config.yaml")+")")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Insert entry text verbatim instead of rendering Markdown")

	return cmd
}

// runConvert executes the pipeline: resolve, load, sort, render, write.
func runConvert(cmd *cobra.Command, args []string, flags convertFlags) error {
	printer := newPrinter(cmd)
	log := newLogger(cmd)

	opts, err := resolveOptions(flags)
	if err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	dir, err := archive.Resolve(args[0], log)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := journal.NewLoader(log).LoadAll(dir)
	if err != nil {
		printer.Error(err)
		return err
	}

	if len(entries) == 0 {
		printer.Warn("no entry files found in %s", dir)
	}

	journal.SortEntries(entries, opts.SortOrder)

	doc, err := render.New(opts, log).Render(entries)
	if err != nil {
		renderErr := output.NewEntryErrorWithCause("rendering document: "+err.Error(), err)
		printer.Error(renderErr)
		return renderErr
	}

	outPath := resolveOutputPath(args, dir, opts)
	if err := render.WriteDocument(outPath, doc); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Converted %d entries to %s", len(entries), outPath),
		"entries": len(entries),
		"output":  outPath,
	})
}

// resolveOptions layers config file, environment, and flags; flags win.
func resolveOptions(flags convertFlags) (config.Options, error) {
	cfgPath := flags.configFile
	if cfgPath == "" {
		cfgPath = filepath.Join(config.Dir(), "config.yaml")
	}

	opts, err := config.Load(cfgPath)
	if err != nil {
		return opts, err
	}

	opts.ApplyEnv()

	if flags.stylesheet != "" {
		opts.Stylesheet = flags.stylesheet
	}
	if flags.titleSource != "" {
		opts.TitleSource = config.TitleSource(flags.titleSource)
	}
	if flags.dateFormat != "" {
		opts.DateFormat = config.DateFormat(flags.dateFormat)
	}
	if flags.sortOrder != "" {
		opts.SortOrder = config.SortOrder(flags.sortOrder)
	}
	if flags.plain {
		opts.RenderMarkdown = false
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// resolveOutputPath returns the explicit output argument when given,
// otherwise OutputName inside the resolved entry directory.
func resolveOutputPath(args []string, dir string, opts config.Options) string {
	if len(args) == 2 {
		return args[1]
	}
	return filepath.Join(dir, opts.OutputName)
}
