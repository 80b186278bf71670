package mapparser

import (
	"fmt"
	"io/fs"

	"github.com/automoto/maskpoly/shared/raster"
	"golang.org/x/sync/errgroup"
)

// Options tunes Decompose.
type Options struct {
	// Workers bounds how many blobs are decomposed concurrently. Values
	// below 2 decompose sequentially. Output order does not depend on it.
	Workers int
	// OnBlobs, if set, is called once with the segmented blobs before any
	// of them is decomposed. A non-nil error aborts the run.
	OnBlobs func(r *raster.Raster, blobs []Blob) error
}

// Decompose segments r into blobs and cuts every blob into staircase
// regions until none of its pixels remain. Shapes are ordered by blob, then
// by the row-major position of each region's seed.
func Decompose(r *raster.Raster, opts Options) (*Result, error) {
	blobs := FindBlobs(r)
	if opts.OnBlobs != nil {
		if err := opts.OnBlobs(r, blobs); err != nil {
			return nil, fmt.Errorf("blob hook: %w", err)
		}
	}

	perBlob := make([][]Shape, len(blobs))
	if opts.Workers < 2 || len(blobs) < 2 {
		for i, b := range blobs {
			shapes, err := decomposeBlob(i, b)
			if err != nil {
				return nil, err
			}
			perBlob[i] = shapes
		}
	} else {
		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for i, b := range blobs {
			g.Go(func() error {
				shapes, err := decomposeBlob(i, b)
				if err != nil {
					return err
				}
				perBlob[i] = shapes
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	res := &Result{Height: r.Height, Width: r.Width, Blobs: blobs}
	for _, shapes := range perBlob {
		res.Shapes = append(res.Shapes, shapes...)
	}
	return res, nil
}

// DecomposeBlob cuts a single blob into shapes. The returned shapes carry
// blob index 0.
func DecomposeBlob(blob Blob) ([]Shape, error) {
	return decomposeBlob(0, blob)
}

// decomposeBlob works on a grid spanning only the blob's bounding box.
// Cells outside the box are never foreground, so translating the bounds
// does not change which runs the grower accepts.
func decomposeBlob(index int, blob Blob) ([]Shape, error) {
	box := blob.Bounds()
	g := NewGrid(box.Height(), box.Width())
	for _, p := range blob {
		g.Set(p.Row-box.MinRow, p.Col-box.MinCol)
	}

	var shapes []Shape
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if !g.At(r, c) {
				continue
			}
			region, err := Grow(g, r, c)
			if err != nil {
				return nil, fmt.Errorf("blob %d: %w", index, err)
			}
			for k := range region {
				region[k].Row += box.MinRow
				region[k].Lo += box.MinCol
				region[k].Hi += box.MinCol
			}
			poly := Simplify(region)
			if err := poly.Validate(); err != nil {
				return nil, fmt.Errorf("blob %d region at (%d, %d): %w",
					index, region[0].Row, region[0].Lo, err)
			}
			shapes = append(shapes, Shape{Blob: index, Region: region, Polygon: poly})
		}
	}
	return shapes, nil
}

// ParseFile loads the mask name from fsys and returns its polygons.
func ParseFile(fsys fs.FS, name string, opts Options) ([]Polygon, error) {
	r, err := raster.Load(fsys, name)
	if err != nil {
		return nil, err
	}
	res, err := Decompose(r, opts)
	if err != nil {
		return nil, fmt.Errorf("decompose %s: %w", name, err)
	}
	return res.Polygons(), nil
}
