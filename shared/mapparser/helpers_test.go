package mapparser

import (
	"math/rand"
	"testing"

	"github.com/automoto/maskpoly/shared/raster"
	"github.com/stretchr/testify/require"
)

// mustRaster builds a raster from rows of '#' (foreground) and '.' cells.
func mustRaster(t testing.TB, rows ...string) *raster.Raster {
	t.Helper()
	m := make([][]uint8, len(rows))
	for i, row := range rows {
		m[i] = make([]uint8, len(row))
		for j, ch := range row {
			if ch == '#' {
				m[i][j] = 255
			}
		}
	}
	r, err := raster.FromRows(m)
	require.NoError(t, err)
	return r
}

// randomRaster fills a raster with blocky noise so blobs have some shape.
func randomRaster(rng *rand.Rand, height, width int, density float64) *raster.Raster {
	r := &raster.Raster{Height: height, Width: width, Alpha: make([]uint8, height*width)}
	for i := range r.Alpha {
		if rng.Float64() < density {
			r.Alpha[i] = uint8(1 + rng.Intn(255))
		}
	}
	// Smear rows downwards to grow staircase-friendly runs.
	for row := 1; row < height; row++ {
		for col := 0; col < width; col++ {
			if r.Alpha[(row-1)*width+col] > 0 && rng.Intn(3) > 0 {
				r.Alpha[row*width+col] = 255
			}
		}
	}
	return r
}
