package mapparser

import "github.com/automoto/maskpoly/shared/raster"

// neighborOffsets lists the 4-connected steps as (dRow, dCol).
var neighborOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// FindBlobs partitions the foreground of r into maximal 4-connected blobs.
// Blobs are returned in discovery order of a row-major scan; pixels within a
// blob are in breadth-first order from the first pixel found.
//
// Cells are marked on enqueue, so no pixel is queued twice.
//
// Time:   O(H×W×4).
// Memory: O(H×W) for visited flags and output.
func FindBlobs(r *raster.Raster) []Blob {
	seen := make([]bool, len(r.Alpha))
	var blobs []Blob
	var queue []Point

	for row := 0; row < r.Height; row++ {
		for col := 0; col < r.Width; col++ {
			i0 := row*r.Width + col
			if r.Alpha[i0] == 0 || seen[i0] {
				continue
			}
			seen[i0] = true
			queue = append(queue[:0], Point{Row: row, Col: col})

			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				for _, d := range neighborOffsets {
					nr, nc := p.Row+d[0], p.Col+d[1]
					if !r.InBounds(nr, nc) {
						continue
					}
					ni := nr*r.Width + nc
					if r.Alpha[ni] == 0 || seen[ni] {
						continue
					}
					seen[ni] = true
					queue = append(queue, Point{Row: nr, Col: nc})
				}
			}

			blob := make(Blob, len(queue))
			copy(blob, queue)
			blobs = append(blobs, blob)
		}
	}
	return blobs
}
