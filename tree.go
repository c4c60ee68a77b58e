package coursetoc

import "strings"

// AttrMatcher reports whether an element satisfies an attribute condition.
type AttrMatcher func(el Element) bool

// Finder locates descendant elements by tag name and attribute condition.
// Results are in document order.
type Finder interface {
	// FindFirst returns the first matching descendant element.
	FindFirst(tag string, match AttrMatcher) (Element, bool)

	// FindAll returns every matching descendant element.
	FindAll(tag string, match AttrMatcher) []Element
}

// Document is the root of a parsed markup document.
type Document interface {
	Finder
}

// Element is a single element node in a parsed markup document.
type Element interface {
	Finder

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Text returns the element's text content: every descendant text node
	// is trimmed, whitespace-only nodes are dropped, and the remainder is
	// concatenated in document order with no separator.
	Text() string

	// FindNext returns the next matching element in document order after
	// the receiver, starting with the receiver's own descendants and
	// continuing past the end of its subtree.
	FindNext(tag string, match AttrMatcher) (Element, bool)
}

// WithAttr matches elements whose named attribute equals value exactly.
func WithAttr(name, value string) AttrMatcher {
	return func(el Element) bool {
		v, ok := el.Attr(name)
		return ok && v == value
	}
}

// WithClass matches elements whose class list contains the given class.
func WithClass(name string) AttrMatcher {
	return func(el Element) bool {
		classes, ok := el.Attr("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(classes) {
			if c == name {
				return true
			}
		}
		return false
	}
}

// Any matches every element.
func Any() AttrMatcher {
	return func(Element) bool { return true }
}
