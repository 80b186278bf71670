package mapparser

import "errors"

var (
	// ErrEmptySeed indicates Grow found no foreground run at the seed cell.
	// Decompose never seeds on background, so this signals a broken invariant.
	ErrEmptySeed = errors.New("mapparser: seed cell is not foreground")
	// ErrMalformedPolygon indicates an outline with fewer than three vertices,
	// zero area, or crossing edges.
	ErrMalformedPolygon = errors.New("mapparser: polygon is not a simple closed outline")
)
