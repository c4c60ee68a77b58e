package coursetoc

// Extractor derives section outlines from course-page HTML.
type Extractor interface {
	// Extract parses raw HTML and returns one Section per section-heading
	// marker, in document order. Missing optional sub-elements degrade to
	// the "N/A" sentinel rather than failing; only input the parser
	// rejects outright returns an error.
	Extract(html string) ([]Section, error)
}
