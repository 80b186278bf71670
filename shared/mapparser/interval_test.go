package mapparser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindInterval(t *testing.T) {
	tests := []struct {
		name     string
		line     []uint8
		lo, hi   Bound
		wantOK   bool
		wantLo   int
		wantHi   int
		wantLine []uint8
	}{
		{
			name:     "first run unbounded",
			line:     []uint8{0, 1, 1, 0, 1, 1, 1, 0},
			lo:       Unbounded,
			hi:       Unbounded,
			wantOK:   true,
			wantLo:   1,
			wantHi:   3,
			wantLine: []uint8{0, 0, 0, 0, 1, 1, 1, 0},
		},
		{
			name:     "left bound skips earlier run",
			line:     []uint8{0, 1, 1, 0, 1, 1, 1, 0},
			lo:       Bound{Min: 2, Max: math.MaxInt},
			hi:       Unbounded,
			wantOK:   true,
			wantLo:   4,
			wantHi:   7,
			wantLine: []uint8{0, 1, 1, 0, 0, 0, 0, 0},
		},
		{
			name:     "right edge lower bound is exclusive",
			line:     []uint8{0, 1, 1, 0, 1, 1, 1, 0},
			lo:       Unbounded,
			hi:       Bound{Min: 3, Max: math.MaxInt},
			wantOK:   true,
			wantLo:   4,
			wantHi:   7,
			wantLine: []uint8{0, 1, 1, 0, 0, 0, 0, 0},
		},
		{
			name:     "no run satisfies right edge upper bound",
			line:     []uint8{0, 1, 1, 0, 1, 1, 1, 0},
			lo:       Unbounded,
			hi:       Bound{Min: 0, Max: 2},
			wantLine: []uint8{0, 1, 1, 0, 1, 1, 1, 0},
		},
		{
			name:     "left edge upper bound is exclusive",
			line:     []uint8{0, 1, 1, 0},
			lo:       Bound{Min: 0, Max: 1},
			hi:       Unbounded,
			wantLine: []uint8{0, 1, 1, 0},
		},
		{
			name:     "run reaching end of row",
			line:     []uint8{0, 0, 1, 1},
			lo:       Unbounded,
			hi:       Unbounded,
			wantOK:   true,
			wantLo:   2,
			wantHi:   4,
			wantLine: []uint8{0, 0, 0, 0},
		},
		{
			name:     "empty row",
			line:     []uint8{0, 0, 0},
			lo:       Unbounded,
			hi:       Unbounded,
			wantLine: []uint8{0, 0, 0},
		},
		{
			name:     "out of range bounds are clamped",
			line:     []uint8{1, 1, 0},
			lo:       Bound{Min: -5, Max: 99},
			hi:       Bound{Min: -1, Max: 42},
			wantOK:   true,
			wantLo:   0,
			wantHi:   2,
			wantLine: []uint8{0, 0, 0},
		},
		{
			name:     "negative right edge bound admits nothing",
			line:     []uint8{1, 1, 0},
			lo:       Unbounded,
			hi:       Bound{Min: 0, Max: -3},
			wantLine: []uint8{1, 1, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := FindInterval(tt.line, tt.lo, tt.hi)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLo, lo)
				assert.Equal(t, tt.wantHi, hi)
			}
			assert.Equal(t, tt.wantLine, tt.line)
		})
	}
}

func TestFindInterval_NeverReturnsSameCellsTwice(t *testing.T) {
	line := []uint8{1, 1, 0, 1}
	lo, hi, ok := FindInterval(line, Unbounded, Unbounded)
	assert.True(t, ok)
	assert.Equal(t, [2]int{0, 2}, [2]int{lo, hi})

	lo, hi, ok = FindInterval(line, Unbounded, Unbounded)
	assert.True(t, ok)
	assert.Equal(t, [2]int{3, 4}, [2]int{lo, hi})

	_, _, ok = FindInterval(line, Unbounded, Unbounded)
	assert.False(t, ok)
}
