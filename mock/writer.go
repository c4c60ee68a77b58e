package mock

import (
	"context"

	"github.com/pbialon/coursetoc"
)

var _ coursetoc.Writer = (*Writer)(nil)

// Writer is a mock implementation of coursetoc.Writer.
type Writer struct {
	WriteFn func(ctx context.Context, path string, sections []coursetoc.Section) error
}

func (w *Writer) Write(ctx context.Context, path string, sections []coursetoc.Section) error {
	return w.WriteFn(ctx, path, sections)
}
