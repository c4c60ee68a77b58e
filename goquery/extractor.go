package goquery

import (
	"github.com/pbialon/coursetoc"
)

// Extractor extracts course sections from raw HTML.
type Extractor struct{}

var _ coursetoc.Extractor = (*Extractor)(nil)

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page and collects its section records.
func (e *Extractor) Extract(rawHTML string) ([]coursetoc.Section, error) {
	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return coursetoc.ExtractSections(doc), nil
}
