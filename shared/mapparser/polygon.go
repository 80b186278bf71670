package mapparser

import "fmt"

// Area returns the enclosed area in pixels.
func (p Polygon) Area() float64 {
	a := p.doubleArea()
	if a < 0 {
		a = -a
	}
	return float64(a) / 2
}

// doubleArea is twice the signed shoelace area.
func (p Polygon) doubleArea() int64 {
	var s int64
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		s += int64(a.Row)*int64(b.Col) - int64(b.Row)*int64(a.Col)
	}
	return s
}

// Validate checks that p is a closed simple outline: at least three
// vertices, no repeated or backtracking vertices, non-zero area, and no two
// non-adjacent edges touching.
func (p Polygon) Validate() error {
	n := len(p)
	if n < 3 {
		return fmt.Errorf("%w: %d vertices", ErrMalformedPolygon, n)
	}
	if p.doubleArea() == 0 {
		return fmt.Errorf("%w: zero area", ErrMalformedPolygon)
	}
	for i := 0; i < n; i++ {
		a, b, c := p[i], p[(i+1)%n], p[(i+2)%n]
		if a == b {
			return fmt.Errorf("%w: repeated vertex %v", ErrMalformedPolygon, a)
		}
		if cross(a, b, c) == 0 && dot(a, b, c) < 0 {
			return fmt.Errorf("%w: edge doubles back at %v", ErrMalformedPolygon, b)
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if segmentsTouch(a, b, p[j], p[(j+1)%n]) {
				return fmt.Errorf("%w: edges %d and %d cross", ErrMalformedPolygon, i, j)
			}
		}
	}
	return nil
}

// cross is the z component of (b-a) x (c-a).
func cross(a, b, c Point) int64 {
	return int64(b.Row-a.Row)*int64(c.Col-a.Col) - int64(b.Col-a.Col)*int64(c.Row-a.Row)
}

// dot is (b-a) . (c-b).
func dot(a, b, c Point) int64 {
	return int64(b.Row-a.Row)*int64(c.Row-b.Row) + int64(b.Col-a.Col)*int64(c.Col-b.Col)
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether c, known collinear with a-b, lies within its box.
func onSegment(a, b, c Point) bool {
	return min(a.Row, b.Row) <= c.Row && c.Row <= max(a.Row, b.Row) &&
		min(a.Col, b.Col) <= c.Col && c.Col <= max(a.Col, b.Col)
}

// segmentsTouch reports whether closed segments p1-p2 and q1-q2 share a point.
func segmentsTouch(p1, p2, q1, q2 Point) bool {
	d1 := sign(cross(q1, q2, p1))
	d2 := sign(cross(q1, q2, p2))
	d3 := sign(cross(p1, p2, q1))
	d4 := sign(cross(p1, p2, q2))
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}
