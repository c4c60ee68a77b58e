package fs

import (
	"context"
	"os"

	"github.com/pbialon/coursetoc"
)

// Ensure Loader implements coursetoc.Loader at compile time.
var _ coursetoc.Loader = (*Loader)(nil)

// Loader reads saved course pages from disk.
type Loader struct{}

// NewLoader returns a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the page at path. It returns ENOTFOUND when no file exists
// there.
func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", coursetoc.Errorf(coursetoc.ENOTFOUND, "the file %q does not exist", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
