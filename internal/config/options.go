package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Option validation errors.
var (
	ErrInvalidTitleSource = errors.New("title_source must be 'date' or 'text'")
	ErrInvalidDateFormat  = errors.New("date_format must be 'long' or 'iso'")
	ErrInvalidSortOrder   = errors.New("sort_order must be 'filename' or 'date'")
	ErrInvalidCharset     = errors.New("charset must be UTF-8")
	ErrMissingStylesheet  = errors.New("stylesheet must not be empty")
	ErrMissingOutputName  = errors.New("output_name must not be empty")
)

// TitleSource selects what each entry's top-level heading holds.
type TitleSource string

// Title sources.
const (
	TitleDate TitleSource = "date" // formatted entry date
	TitleText TitleSource = "text" // first few words of the entry body
)

// DateFormat selects the display format for entry timestamps.
type DateFormat string

// Date formats. Long renders "November 09, 2017 14:46",
// ISO renders "2017-11-09 14:46:47".
const (
	DateLong DateFormat = "long"
	DateISO  DateFormat = "iso"
)

// SortOrder selects the order of entry blocks in the output document.
// The Journey app's own export relied on directory-listing order, which is
// platform dependent; both choices here are deterministic.
type SortOrder string

// Sort orders.
const (
	SortFilename SortOrder = "filename" // entry file names, ascending
	SortDate     SortOrder = "date"     // date_journal, ascending
)

// DefaultStylesheet is the stylesheet linked from the generated page when no
// other location is configured. It is referenced, never fetched.
const DefaultStylesheet = "https://unpkg.com/sakura.css/css/sakura-dark.css"

// DefaultOutputName is the HTML file name used when the caller gives none.
const DefaultOutputName = "index.html"

// Options holds every presentation policy the converter supports: markdown
// on or off, date vs. text titles, stylesheet location, entry order. All of
// them are explicit configuration rather than build variants.
type Options struct {
	Stylesheet     string      `yaml:"stylesheet"`
	TitleSource    TitleSource `yaml:"title_source"`
	RenderMarkdown bool        `yaml:"render_markdown"`
	DateFormat     DateFormat  `yaml:"date_format"`
	SortOrder      SortOrder   `yaml:"sort_order"`
	Charset        string      `yaml:"charset"`
	OutputName     string      `yaml:"output_name"`
}

// Default returns the options used when no config file or flags are given.
func Default() Options {
	return Options{
		Stylesheet:     DefaultStylesheet,
		TitleSource:    TitleDate,
		RenderMarkdown: true,
		DateFormat:     DateLong,
		SortOrder:      SortFilename,
		Charset:        "UTF-8",
		OutputName:     DefaultOutputName,
	}
}

// fileOptions mirrors Options with pointer fields so a config file can omit
// any key without clobbering the default (notably render_markdown: the zero
// bool is a real value).
type fileOptions struct {
	Stylesheet     *string      `yaml:"stylesheet"`
	TitleSource    *TitleSource `yaml:"title_source"`
	RenderMarkdown *bool        `yaml:"render_markdown"`
	DateFormat     *DateFormat  `yaml:"date_format"`
	SortOrder      *SortOrder   `yaml:"sort_order"`
	Charset        *string      `yaml:"charset"`
	OutputName     *string      `yaml:"output_name"`
}

// Load reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file fileOptions
	if err := yaml.Unmarshal(data, &file); err != nil {
		return opts, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if file.Stylesheet != nil {
		opts.Stylesheet = *file.Stylesheet
	}
	if file.TitleSource != nil {
		opts.TitleSource = *file.TitleSource
	}
	if file.RenderMarkdown != nil {
		opts.RenderMarkdown = *file.RenderMarkdown
	}
	if file.DateFormat != nil {
		opts.DateFormat = *file.DateFormat
	}
	if file.SortOrder != nil {
		opts.SortOrder = *file.SortOrder
	}
	if file.Charset != nil {
		opts.Charset = *file.Charset
	}
	if file.OutputName != nil {
		opts.OutputName = *file.OutputName
	}

	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config file %s: %w", path, err)
	}
	return opts, nil
}

// ApplyEnv overlays environment overrides on the options.
// JOURNEY2HTML_STYLESHEET replaces the stylesheet location; values already
// set by flags take precedence and are applied after this.
func (o *Options) ApplyEnv() {
	if css := os.Getenv("JOURNEY2HTML_STYLESHEET"); css != "" {
		o.Stylesheet = css
	}
}

// Validate checks that every option holds a supported value.
func (o *Options) Validate() error {
	switch o.TitleSource {
	case TitleDate, TitleText:
	default:
		return ErrInvalidTitleSource
	}

	switch o.DateFormat {
	case DateLong, DateISO:
	default:
		return ErrInvalidDateFormat
	}

	switch o.SortOrder {
	case SortFilename, SortDate:
	default:
		return ErrInvalidSortOrder
	}

	// The document is always written as UTF-8 bytes; the charset option only
	// feeds the <meta charset> declaration, so anything else would lie.
	switch strings.ToUpper(o.Charset) {
	case "UTF-8", "UTF8":
	default:
		return ErrInvalidCharset
	}

	if o.Stylesheet == "" {
		return ErrMissingStylesheet
	}
	if o.OutputName == "" {
		return ErrMissingOutputName
	}

	return nil
}
