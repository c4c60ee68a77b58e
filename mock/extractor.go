package mock

import "github.com/pbialon/coursetoc"

var _ coursetoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of coursetoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]coursetoc.Section, error)
}

func (e *Extractor) Extract(html string) ([]coursetoc.Section, error) {
	return e.ExtractFn(html)
}
