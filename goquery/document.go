// Package goquery implements page parsing and section extraction using the
// goquery library.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pbialon/coursetoc"
	"golang.org/x/net/html"
)

// Document wraps a parsed page.
type Document struct {
	doc *goquery.Document
}

var _ coursetoc.Document = (*Document)(nil)

// Parse builds a Document from raw HTML.
func Parse(rawHTML string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, coursetoc.Errorf(coursetoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// FindFirst returns the first element with the given tag accepted by match.
func (d *Document) FindFirst(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	return firstMatch(d.doc.Find(strings.ToLower(tag)), match)
}

// FindAll returns every element with the given tag accepted by match, in
// document order.
func (d *Document) FindAll(tag string, match coursetoc.AttrMatcher) []coursetoc.Element {
	return allMatches(d.doc.Find(strings.ToLower(tag)), match)
}

// Element is a single node of a parsed page.
type Element struct {
	node *html.Node
}

var _ coursetoc.Element = (*Element)(nil)

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text concatenates the text nodes of the subtree, each trimmed of
// surrounding whitespace, so markup indentation never leaks into the result.
func (e *Element) Text() string {
	var sb strings.Builder
	appendText(&sb, e.node)
	return sb.String()
}

func appendText(sb *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		sb.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(sb, c)
	}
}

// FindFirst returns the first descendant with the given tag accepted by match.
func (e *Element) FindFirst(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	return firstMatch(e.selection().Find(strings.ToLower(tag)), match)
}

// FindAll returns every descendant with the given tag accepted by match, in
// document order.
func (e *Element) FindAll(tag string, match coursetoc.AttrMatcher) []coursetoc.Element {
	return allMatches(e.selection().Find(strings.ToLower(tag)), match)
}

// FindNext walks forward in document order starting at the first child and
// returns the first element with the given tag accepted by match. The walk
// crosses the end of the subtree into the siblings of the ancestors.
func (e *Element) FindNext(tag string, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	tag = strings.ToLower(tag)
	for n := nextInDocument(e.node); n != nil; n = nextInDocument(n) {
		if n.Type != html.ElementNode || n.Data != tag {
			continue
		}
		el := &Element{node: n}
		if match(el) {
			return el, true
		}
	}
	return nil, false
}

func (e *Element) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.node).Selection
}

func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

func firstMatch(sel *goquery.Selection, match coursetoc.AttrMatcher) (coursetoc.Element, bool) {
	for _, n := range sel.Nodes {
		el := &Element{node: n}
		if match(el) {
			return el, true
		}
	}
	return nil, false
}

func allMatches(sel *goquery.Selection, match coursetoc.AttrMatcher) []coursetoc.Element {
	var els []coursetoc.Element
	for _, n := range sel.Nodes {
		el := &Element{node: n}
		if match(el) {
			els = append(els, el)
		}
	}
	return els
}
