package mock

import "github.com/pbialon/coursetoc"

var _ coursetoc.Element = (*Element)(nil)

// Element is a mock implementation of coursetoc.Element.
type Element struct {
	AttrFn      func(name string) (string, bool)
	TextFn      func() string
	FindFirstFn func(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool)
	FindAllFn   func(tag string, match coursetoc.AttrMatcher) []coursetoc.Element
	FindNextFn  func(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool)
}

func (e *Element) Attr(name string) (string, bool) {
	return e.AttrFn(name)
}

func (e *Element) Text() string {
	return e.TextFn()
}

func (e *Element) FindFirst(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	return e.FindFirstFn(tag, match)
}

func (e *Element) FindAll(tag string, match coursetoc.AttrMatcher) []coursetoc.Element {
	return e.FindAllFn(tag, match)
}

func (e *Element) FindNext(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	return e.FindNextFn(tag, match)
}
