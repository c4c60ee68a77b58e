// Package coursetoc extracts section outlines from saved course pages.
// It parses a course-page HTML snapshot, locates the section-heading
// markers, derives a (title, duration) pair for each one, and serializes
// the result as a tab-separated table or a plain-text listing.
//
// This package contains domain types, interfaces, and the extraction
// policy following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, fs/).
package coursetoc
