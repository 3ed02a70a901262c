// Package main provides the entry point for the journey2html CLI.
package main

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dmpop/journey2html/internal/archive"
	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/journal"
	"github.com/dmpop/journey2html/internal/output"
)

// previewWidth is the display width budget for the text column.
const previewWidth = 40

// entrySummary is the JSON shape for one inspected entry.
type entrySummary struct {
	File    string `json:"file"`
	Date    string `json:"date"`
	Address string `json:"address,omitempty"`
	Photos  int    `json:"photos"`
	Text    string `json:"text"`
}

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	var sortFlag string
	var dateFormatFlag string

	cmd := &cobra.Command{
		Use:   "inspect <backup.zip|directory>",
		Short: "List the entries in a backup without writing HTML",
		Long: `List every entry in a Journey backup as a table.

Useful for checking a backup before converting it. Note that a ZIP
source is expanded next to the archive, exactly as convert would do.

Examples:
  journey2html inspect journey-foo.zip
  journey2html inspect --sort date ./entries/
  journey2html inspect --json journey-foo.zip | jq '.[].date'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], sortFlag, dateFormatFlag)
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Entry order: filename or date")
	cmd.Flags().StringVar(&dateFormatFlag, "date-format", "", "Date display format: long or iso")

	return cmd
}

// runInspect loads the backup and prints one row per entry.
func runInspect(cmd *cobra.Command, source, sortFlag, dateFormatFlag string) error {
	printer := newPrinter(cmd)
	log := newLogger(cmd)

	opts := config.Default()
	if sortFlag != "" {
		opts.SortOrder = config.SortOrder(sortFlag)
	}
	if dateFormatFlag != "" {
		opts.DateFormat = config.DateFormat(dateFormatFlag)
	}
	if err := opts.Validate(); err != nil {
		userErr := output.NewUserError(err.Error())
		printer.Error(userErr)
		return userErr
	}

	dir, err := archive.Resolve(source, log)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries, err := journal.NewLoader(log).LoadAll(dir)
	if err != nil {
		printer.Error(err)
		return err
	}

	journal.SortEntries(entries, opts.SortOrder)

	if printer.IsJSON() {
		return printer.WriteJSON(summarize(entries, opts.DateFormat))
	}

	headers := []string{"DATE", "ADDRESS", "PHOTOS", "TEXT"}
	rows := make([][]string, 0, len(entries))
	for _, summary := range summarize(entries, opts.DateFormat) {
		rows = append(rows, []string{
			summary.Date,
			summary.Address,
			strconv.Itoa(summary.Photos),
			summary.Text,
		})
	}
	printer.Section("Entries")
	printer.Table(headers, rows)
	printer.Println()
	printer.KeyValue("Source", dir)
	printer.KeyValue("Count", strconv.Itoa(len(entries)))

	return nil
}

// summarize flattens entries into display rows.
func summarize(entries []*journal.Entry, format config.DateFormat) []entrySummary {
	summaries := make([]entrySummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, entrySummary{
			File:    entry.File,
			Date:    entry.DisplayDate(format),
			Address: entry.Address,
			Photos:  len(entry.Photos),
			Text:    preview(entry.Text),
		})
	}
	return summaries
}

// preview collapses the body to a single line and truncates it to the
// column budget by display width.
func preview(text string) string {
	oneLine := strings.Join(strings.Fields(text), " ")
	return runewidth.Truncate(oneLine, previewWidth, "…")
}
