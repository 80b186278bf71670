package mapparser

import (
	"encoding/json"
	"fmt"
)

// Point is a (row, col) coordinate. It serializes as a two-element array.
type Point struct {
	Row, Col int
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("mapparser: point needs 2 coordinates, got %d", len(v))
	}
	p.Row, p.Col = v[0], v[1]
	return nil
}

// Blob is a maximal 4-connected set of foreground pixels, in the order the
// flood fill reached them.
type Blob []Point

// Bounds returns the half-open bounding box of the blob.
func (b Blob) Bounds() Rect {
	if len(b) == 0 {
		return Rect{}
	}
	r := Rect{MinRow: b[0].Row, MinCol: b[0].Col, MaxRow: b[0].Row + 1, MaxCol: b[0].Col + 1}
	for _, p := range b[1:] {
		r.MinRow = min(r.MinRow, p.Row)
		r.MinCol = min(r.MinCol, p.Col)
		r.MaxRow = max(r.MaxRow, p.Row+1)
		r.MaxCol = max(r.MaxCol, p.Col+1)
	}
	return r
}

// Rect is a half-open box [MinRow, MaxRow) x [MinCol, MaxCol).
type Rect struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

func (r Rect) Height() int { return r.MaxRow - r.MinRow }
func (r Rect) Width() int  { return r.MaxCol - r.MinCol }

// Interval is the run [Lo, Hi) of row Row.
type Interval struct {
	Row, Lo, Hi int
}

// Region is a staircase: intervals on consecutive rows, top to bottom.
type Region []Interval

// Cells returns the number of pixels the region covers.
func (r Region) Cells() int {
	n := 0
	for _, iv := range r {
		n += iv.Hi - iv.Lo
	}
	return n
}

// Polygon is an outline whose last vertex connects back to the first.
type Polygon []Point

// Shape is one decomposed piece: the region that was consumed and the
// outline emitted for it. Blob is the index of the owning blob.
type Shape struct {
	Blob    int
	Region  Region
	Polygon Polygon
}

// Result is the full decomposition of one raster.
type Result struct {
	Height, Width int
	Blobs         []Blob
	Shapes        []Shape
}

// Polygons returns the outlines in emission order: blob order, then
// discovery order within a blob.
func (r *Result) Polygons() []Polygon {
	polys := make([]Polygon, len(r.Shapes))
	for i, s := range r.Shapes {
		polys[i] = s.Polygon
	}
	return polys
}
