package gamemath

import (
	"math"
	"slices"
)

// Vec is a point or offset in world space. X grows to the right, Y grows
// downward, matching image coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// FromRowCol converts a grid position into world space: columns become X and
// rows become Y.
func FromRowCol(row, col int) Vec {
	return Vec{X: float64(col), Y: float64(row)}
}

// Centroid returns the mean of the vertices. It is zero for an empty slice.
func Centroid(pts []Vec) Vec {
	if len(pts) == 0 {
		return Vec{}
	}
	var c Vec
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Vec{c.X / n, c.Y / n}
}

// Translate returns a copy of pts with every point shifted by -origin.
func Translate(pts []Vec, origin Vec) []Vec {
	out := make([]Vec, len(pts))
	for i, p := range pts {
		out[i] = p.Sub(origin)
	}
	return out
}

// Bounds returns the component-wise minimum and maximum of pts.
func Bounds(pts []Vec) (lo, hi Vec) {
	if len(pts) == 0 {
		return Vec{}, Vec{}
	}
	lo = Vec{math.Inf(1), math.Inf(1)}
	hi = Vec{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

func cross(o, a, b Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ConvexHull returns the convex hull of pts using Andrew's monotone chain.
// Collinear points are dropped. The hull starts at the lowest X (then lowest
// Y) point and winds with positive cross product, which is clockwise on screen
// since Y points down. Fewer than three distinct points are returned as is.
func ConvexHull(pts []Vec) []Vec {
	sorted := slices.Clone(pts)
	slices.SortFunc(sorted, func(a, b Vec) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y < b.Y {
			return -1
		}
		if a.Y > b.Y {
			return 1
		}
		return 0
	})
	sorted = slices.Compact(sorted)
	if len(sorted) < 3 {
		return sorted
	}

	hull := make([]Vec, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
