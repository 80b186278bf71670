package raster

import (
	"image"
	"io"
	"io/fs"
	"os"

	// Decoders for the formats level masks are authored in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image from r and extracts its alpha channel.
// Only alpha is inspected; images without an alpha channel decode as fully
// opaque.
func Decode(r io.Reader) (*Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &ResourceError{Err: err}
	}
	return FromImage(img), nil
}

// Load opens name within fsys and decodes it. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, name string) (*Raster, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &ResourceError{Path: name, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ResourceError{Path: name, Err: err}
	}
	return FromImage(img), nil
}

// LoadFile decodes the image at path on the local filesystem.
func LoadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ResourceError{Path: path, Err: err}
	}
	return FromImage(img), nil
}

// FromImage extracts the alpha channel of img. The raster origin is the
// image's Bounds().Min.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	r := &Raster{
		Height: b.Dy(),
		Width:  b.Dx(),
		Alpha:  make([]uint8, b.Dx()*b.Dy()),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < r.Height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < r.Width; x++ {
				r.Alpha[y*r.Width+x] = row[x*4+3]
			}
		}
	case *image.RGBA:
		for y := 0; y < r.Height; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < r.Width; x++ {
				r.Alpha[y*r.Width+x] = row[x*4+3]
			}
		}
	case *image.Alpha:
		for y := 0; y < r.Height; y++ {
			copy(r.Alpha[y*r.Width:(y+1)*r.Width], src.Pix[y*src.Stride:])
		}
	default:
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				r.Alpha[y*r.Width+x] = uint8(a >> 8)
			}
		}
	}
	return r
}

// FromRows builds a Raster from a rectangular matrix of alpha values.
func FromRows(rows [][]uint8) (*Raster, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyRows
	}
	h, w := len(rows), len(rows[0])
	r := &Raster{Height: h, Width: w, Alpha: make([]uint8, 0, h*w)}
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		r.Alpha = append(r.Alpha, row...)
	}
	return r, nil
}
