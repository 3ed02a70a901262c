// Package render assembles journal entries into a single static HTML document.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dmpop/journey2html/internal/config"
	"github.com/dmpop/journey2html/internal/journal"
	"github.com/dmpop/journey2html/internal/logger"
)

// photoWidth is the fixed display width for gallery images.
const photoWidth = 600

// indent is one level of pretty-printing indentation.
const indent = "  "

// Renderer maps an ordered sequence of entries to one HTML document.
// The document is built in memory and written once; there is no
// streaming or pagination.
type Renderer struct {
	opts config.Options
	md   goldmark.Markdown
	log  *logger.Logger
}

// New creates a Renderer for the given options.
func New(opts config.Options, log *logger.Logger) *Renderer {
	return &Renderer{
		opts: opts,
		md:   newMarkdown(),
		log:  log,
	}
}

// Render produces the full HTML document for the entries, one block per
// entry in the given order. Output is deterministic for identical input.
func (r *Renderer) Render(entries []*journal.Entry) (string, error) {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	r.writeHead(&b)
	b.WriteString(indent + "<body>\n")

	for _, entry := range entries {
		if err := r.writeEntry(&b, entry); err != nil {
			return "", err
		}
	}

	b.WriteString(indent + "</body>\n")
	b.WriteString("</html>\n")

	r.log.Info("document rendered", "entries", len(entries))
	return b.String(), nil
}

// writeHead emits the document head: stylesheet link and charset declaration.
func (r *Renderer) writeHead(b *strings.Builder) {
	b.WriteString(indent + "<head>\n")
	fmt.Fprintf(b, "%s<link rel=\"stylesheet\" href=\"%s\" type=\"text/css\"/>\n",
		indent+indent, html.EscapeString(r.opts.Stylesheet))
	fmt.Fprintf(b, "%s<meta charset=\"%s\"/>\n", indent+indent, html.EscapeString(r.opts.Charset))
	b.WriteString(indent + "</head>\n")
}

// writeEntry emits one entry block: heading, optional address line,
// photo gallery, and the body text.
func (r *Renderer) writeEntry(b *strings.Builder, entry *journal.Entry) error {
	base := indent + indent

	b.WriteString(base + "<div class=\"entry\">\n")

	title := entry.Title(r.opts.TitleSource, r.opts.DateFormat)
	fmt.Fprintf(b, "%s<h1>%s</h1>\n", base+indent, html.EscapeString(title))

	// Entries without an address get no address line at all
	if entry.Address != "" {
		fmt.Fprintf(b, "%s<h5>%s</h5>\n", base+indent, html.EscapeString(entry.Address))
	}

	r.writeGallery(b, entry, base+indent)

	if err := r.writeText(b, entry, base+indent); err != nil {
		return err
	}

	b.WriteString(base + "</div>\n")

	if r.log.DebugEnabled() {
		r.log.Debug("entry rendered", "file", entry.File, "photos", len(entry.Photos))
	}
	return nil
}

// writeGallery emits one img element per photo reference.
// References are emitted verbatim; nothing checks that they resolve.
func (r *Renderer) writeGallery(b *strings.Builder, entry *journal.Entry, base string) {
	if len(entry.Photos) == 0 {
		return
	}

	b.WriteString(base + "<div class=\"gallery\">\n")
	for _, photo := range entry.Photos {
		fmt.Fprintf(b, "%s<img src=\"%s\" width=\"%d\"/>\n",
			base+indent, html.EscapeString(photo), photoWidth)
	}
	b.WriteString(base + "</div>\n")
}

// writeText emits the entry body: rendered Markdown, or the escaped raw
// text as a paragraph when Markdown rendering is disabled.
func (r *Renderer) writeText(b *strings.Builder, entry *journal.Entry, base string) error {
	if !r.opts.RenderMarkdown {
		fmt.Fprintf(b, "%s<p>%s</p>\n", base, html.EscapeString(entry.Text))
		return nil
	}

	fragment, err := markdownToHTML(r.md, entry.Text)
	if err != nil {
		return fmt.Errorf("entry %s: %w", entry.File, err)
	}

	writeIndented(b, fragment, base)
	return nil
}

// writeIndented writes a multi-line HTML fragment with each line prefixed
// by the current indentation.
func writeIndented(b *strings.Builder, fragment, base string) {
	for _, line := range strings.Split(strings.TrimRight(fragment, "\n"), "\n") {
		b.WriteString(base)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
