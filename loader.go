package coursetoc

import "context"

// Loader reads a saved course page into memory.
type Loader interface {
	// Load returns the document content at path as UTF-8 text.
	// Returns ENOTFOUND if path is empty or names no existing file.
	Load(ctx context.Context, path string) (string, error)
}
