package mapparser

import (
	"fmt"
	"math"
)

// Grow consumes the staircase region seeded at (row, col) and returns its
// intervals top to bottom.
//
// The seed row contributes the first run starting at or after col. Each
// following row must supply a run whose left edge lies in [lo-lb, hi) and
// whose right edge lies in (lo, hi+hb], where lb and hb are the previous
// step's edge movements (initially the distance to the grid border). Edges
// therefore never move outward faster than they did on the row above, and
// the region stops at the first row without such a run.
func Grow(g *Grid, row, col int) (Region, error) {
	lo, hi, ok := FindInterval(g.Row(row), Bound{Min: col, Max: math.MaxInt}, Unbounded)
	if !ok {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrEmptySeed, row, col)
	}

	region := Region{{Row: row, Lo: lo, Hi: hi}}
	lb, hb := lo, g.Width-hi
	for r := row + 1; r < g.Height; r++ {
		newLo, newHi, ok := FindInterval(g.Row(r), Bound{Min: lo - lb, Max: hi}, Bound{Min: lo, Max: hi + hb})
		if !ok {
			break
		}
		lb, hb = lo-newLo, newHi-hi
		lo, hi = newLo, newHi
		region = append(region, Interval{Row: r, Lo: lo, Hi: hi})
	}
	return region, nil
}
