package mock

import "github.com/pbialon/coursetoc"

var _ coursetoc.Document = (*Document)(nil)

// Document is a mock implementation of coursetoc.Document.
type Document struct {
	FindFirstFn func(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool)
	FindAllFn   func(tag string, match coursetoc.AttrMatcher) []coursetoc.Element
}

func (d *Document) FindFirst(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	return d.FindFirstFn(tag, match)
}

func (d *Document) FindAll(tag string, match coursetoc.AttrMatcher) []coursetoc.Element {
	return d.FindAllFn(tag, match)
}
