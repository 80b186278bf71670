// Package raster loads mask images and exposes their alpha channel as a
// row-major matrix. It has no dependencies on the physics or render side,
// pure data only.
package raster

// Raster is the alpha channel of a decoded image. Alpha[row*Width+col]
// holds the pixel at (row, col). A Raster is never modified after load.
type Raster struct {
	Height int
	Width  int
	Alpha  []uint8
}

// At returns the alpha value at (row, col).
func (r *Raster) At(row, col int) uint8 {
	return r.Alpha[row*r.Width+col]
}

// Foreground reports whether (row, col) is part of the mask.
func (r *Raster) Foreground(row, col int) bool {
	return r.Alpha[row*r.Width+col] > 0
}

// InBounds reports whether (row, col) lies inside the raster.
func (r *Raster) InBounds(row, col int) bool {
	return row >= 0 && row < r.Height && col >= 0 && col < r.Width
}

// ForegroundCount returns the number of mask pixels.
func (r *Raster) ForegroundCount() int {
	n := 0
	for _, a := range r.Alpha {
		if a > 0 {
			n++
		}
	}
	return n
}
