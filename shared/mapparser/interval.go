package mapparser

import "math"

// Bound limits where an interval edge may fall. Components outside
// [0, len(row)] are clamped to it.
type Bound struct {
	Min, Max int
}

// Unbounded accepts any position in the row.
var Unbounded = Bound{Min: math.MinInt, Max: math.MaxInt}

func (b Bound) clamp(n int) (lo, hi int) {
	return min(max(b.Min, 0), n), min(max(b.Max, 0), n)
}

// FindInterval scans line from column 0 for maximal foreground runs [lo, hi)
// and consumes the first one with loBound.Min <= lo < loBound.Max and
// hiBound.Min < hi <= hiBound.Max. The run's cells are zeroed before
// returning. Runs that fail the bounds are skipped,
// not consumed. ok is false when no run qualifies.
func FindInterval(line []uint8, loBound, hiBound Bound) (lo, hi int, ok bool) {
	n := len(line)
	loMin, loMax := loBound.clamp(n)
	hiMin, hiMax := hiBound.clamp(n)

	for lo < loMax {
		for lo < loMax && line[lo] == 0 {
			lo++
		}
		if lo >= loMax {
			break
		}
		hi = lo
		for hi < n && line[hi] != 0 {
			hi++
		}
		if lo >= loMin && hi > hiMin && hi <= hiMax {
			clear(line[lo:hi])
			return lo, hi, true
		}
		lo = hi
	}
	return 0, 0, false
}
