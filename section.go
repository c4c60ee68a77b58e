package coursetoc

import (
	"regexp"
	"strings"
)

// NotAvailable is the sentinel emitted when an optional lookup finds nothing.
const NotAvailable = "N/A"

// Markers identifying outline structure in saved course pages. The
// data-purpose values are semantic tags; titleClass is the
// tooltip-truncation presentation class the title text hangs off.
const (
	headingPurpose    = "section-heading"
	durationPurpose   = "section-duration"
	srDurationPurpose = "section-duration-sr-only"
	titleClass        = "truncate-with-tooltip--ellipsis--YJw4N"
)

// Section is one entry of a course outline. Both fields are free-form
// text; Duration is normally a clock-like expression or "N/A".
type Section struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// ExtractSections walks a parsed course page and derives one Section per
// section-heading marker, in document order. Duplicates are kept, and the
// returned slice is rebuilt from scratch on every call.
func ExtractSections(doc Document) []Section {
	headings := doc.FindAll("div", WithAttr("data-purpose", headingPurpose))

	sections := make([]Section, 0, len(headings))
	for _, heading := range headings {
		sections = append(sections, Section{
			Title:    DeriveTitle(heading),
			Duration: DeriveDuration(heading),
		})
	}

	return sections
}

// DeriveTitle returns the section title for a heading element.
//
// The title comes from the first descendant span carrying the
// tooltip-truncation class; a heading without one degrades to "N/A". A
// "Section " prefix is rewritten into a checklist entry on its own line.
// The whitespace collapse runs after that rewrite, so the inserted line
// break itself ends up collapsed into a single leading space.
func DeriveTitle(heading Element) string {
	title := NotAvailable
	if span, ok := heading.FindFirst("span", WithClass(titleClass)); ok {
		title = span.Text()
		if strings.HasPrefix(title, "Section ") {
			title = "\n[ ] S." + strings.TrimPrefix(title, "Section ")
		}
	}
	return CollapseSpaces(title)
}

// DeriveDuration returns the section duration for a heading element.
//
// The duration container is the next section-duration marker in document
// order after the heading. A missing container, or a container no fallback
// rule can read, degrades to "N/A".
func DeriveDuration(heading Element) string {
	container, ok := heading.FindNext("div", WithAttr("data-purpose", durationPurpose))
	if !ok {
		return NotAvailable
	}

	duration := NotAvailable
	for _, rule := range durationRules {
		if v, ok := rule(container); ok {
			duration = v
			break
		}
	}

	return CollapseSpaces(duration)
}

// durationRule reads a duration from a duration container element.
type durationRule func(container Element) (string, bool)

// durationRules are evaluated in order; the first rule that reports ok
// wins. The screen-reader text is preferred over the label hidden from
// assistive technology.
var durationRules = []durationRule{
	durationFromScreenReader,
	durationFromHiddenLabel,
}

// durationFromScreenReader reads the screen-reader-only span. With two or
// more nested spans the last one holds the duration; otherwise the span's
// whole text does.
func durationFromScreenReader(container Element) (string, bool) {
	sr, ok := container.FindFirst("span", WithAttr("data-purpose", srDurationPurpose))
	if !ok {
		return "", false
	}

	if spans := sr.FindAll("span", Any()); len(spans) >= 2 {
		return spans[len(spans)-1].Text(), true
	}
	return sr.Text(), true
}

// durationFromHiddenLabel reads the aria-hidden label. Labels of the form
// "2 lectures | 15min" keep only the part after the last pipe.
func durationFromHiddenLabel(container Element) (string, bool) {
	label, ok := container.FindFirst("span", WithAttr("aria-hidden", "true"))
	if !ok {
		return "", false
	}

	text := label.Text()
	if i := strings.LastIndex(text, "|"); i >= 0 {
		return strings.TrimSpace(text[i+1:]), true
	}
	return text, true
}

// spaceRuns matches any run of whitespace characters.
var spaceRuns = regexp.MustCompile(`\s+`)

// CollapseSpaces folds every run of whitespace characters into a single
// ASCII space. It does not trim: a leading or trailing run becomes a
// leading or trailing space.
func CollapseSpaces(s string) string {
	return spaceRuns.ReplaceAllString(s, " ")
}
