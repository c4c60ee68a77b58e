// Package fs reads and writes course pages and section listings on disk.
package fs

import (
	"context"
	"os"
	"strings"

	"github.com/pbialon/coursetoc"
)

// tsvHeader labels the two columns of a tabular listing.
const tsvHeader = "Section Title\tDuration"

// FormatTSV renders the listing as tab-separated rows under a header row.
// Fields never contain tabs or newlines once their whitespace is collapsed,
// so no quoting is applied.
func FormatTSV(sections []coursetoc.Section) string {
	var b strings.Builder
	b.WriteString(tsvHeader)
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString(s.Title)
		b.WriteString("\t")
		b.WriteString(s.Duration)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatText renders the listing as a human readable block, one paragraph per
// section.
func FormatText(sections []coursetoc.Section) string {
	var b strings.Builder
	b.WriteString("Extracted Sections:\n\n")
	for _, s := range sections {
		b.WriteString(s.Title)
		b.WriteString(" - ")
		b.WriteString(s.Duration)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Ensure both writers implement coursetoc.Writer at compile time.
var (
	_ coursetoc.Writer = (*TSVWriter)(nil)
	_ coursetoc.Writer = (*TextWriter)(nil)
)

// TSVWriter writes section listings as tab-separated files.
type TSVWriter struct{}

// NewTSVWriter returns a new TSVWriter.
func NewTSVWriter() *TSVWriter {
	return &TSVWriter{}
}

// Write creates or overwrites the file at path with the tabular listing.
func (w *TSVWriter) Write(ctx context.Context, path string, sections []coursetoc.Section) error {
	return os.WriteFile(path, []byte(FormatTSV(sections)), 0644)
}

// TextWriter writes section listings as human readable text files.
type TextWriter struct{}

// NewTextWriter returns a new TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write creates or overwrites the file at path with the text listing.
func (w *TextWriter) Write(ctx context.Context, path string, sections []coursetoc.Section) error {
	return os.WriteFile(path, []byte(FormatText(sections)), 0644)
}
