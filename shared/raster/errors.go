package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRows indicates FromRows was given no rows or no columns.
	ErrEmptyRows = errors.New("raster: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
)

// ResourceError reports an image that could not be opened or decoded.
// It aborts the pipeline run for that image.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("raster: decode image: %v", e.Err)
	}
	return fmt.Sprintf("raster: load %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
