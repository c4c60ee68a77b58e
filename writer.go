package coursetoc

import "context"

// Writer serializes an extracted section list to a destination file.
type Writer interface {
	// Write creates or overwrites the file at path with the sections
	// rendered in the writer's format. There is no atomic-write or backup
	// behavior: a failure mid-write can leave a partial file.
	Write(ctx context.Context, path string, sections []Section) error
}
