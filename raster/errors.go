package raster

import (
	"errors"
	"fmt"
)

// Sentinel errors for common rasterization failure conditions.
var (
	ErrEmptyDocument    = errors.New("raster: document has no pages")
	ErrBadCoordinate    = errors.New("raster: primitive has a non-finite coordinate")
	ErrBadImage         = errors.New("raster: image primitive has no data")
	ErrUnknownPrimitive = errors.New("raster: unknown primitive type")
)

// RenderError represents an error that occurred during a specific render
// operation. It wraps an underlying error and includes the operation name
// and page index for context.
type RenderError struct {
	Op   string // operation name, e.g. "rect", "text", "output"
	Page int    // zero-based page index; -1 when not page-specific
	Err  error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("raster.%s: page %d: %v", e.Op, e.Page, e.Err)
	}
	return fmt.Sprintf("raster.%s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// newRenderError creates a new RenderError wrapping the given error with
// operation context.
func newRenderError(op string, page int, err error) *RenderError {
	return &RenderError{Op: op, Page: page, Err: err}
}
