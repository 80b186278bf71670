// Package debugdump writes diagnostic images of a decomposition: one PNG per
// blob and a plot of the resulting polygons.
package debugdump

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/automoto/maskpoly/shared/raster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var blobColor = color.NRGBA{A: 255}

// WriteBlobs stores each blob as dir/NN.png: the blob's pixels in opaque
// black on a transparent image the size of r.
func WriteBlobs(dir string, r *raster.Raster, blobs []mapparser.Blob) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	for i, blob := range blobs {
		img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
		for _, p := range blob {
			img.SetNRGBA(p.Col, p.Row, blobColor)
		}
		name := filepath.Join(dir, fmt.Sprintf("%02d.png", i))
		if err := writePNG(name, img); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return f.Close()
}

// BlobHook returns a mapparser.Options.OnBlobs hook that dumps blobs to dir.
func BlobHook(dir string) func(*raster.Raster, []mapparser.Blob) error {
	return func(r *raster.Raster, blobs []mapparser.Blob) error {
		return WriteBlobs(dir, r, blobs)
	}
}

// PlotPolygons draws polys as filled outlines and saves the plot to path.
// The format follows the extension (.png, .svg, .pdf, ...). Rows grow
// downward in the plot so it reads like the source image.
func PlotPolygons(path string, polys []mapparser.Polygon) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d polygons", len(polys))
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"

	colors := palette(len(polys))
	for i, poly := range polys {
		xys := make(plotter.XYs, len(poly))
		for j, pt := range poly {
			xys[j] = plotter.XY{X: float64(pt.Col), Y: -float64(pt.Row)}
		}
		shape, err := plotter.NewPolygon(xys)
		if err != nil {
			return fmt.Errorf("polygon %d: %w", i, err)
		}
		shape.Color = colors[i]
		shape.LineStyle.Width = vg.Points(0.5)
		p.Add(shape)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save polygon plot: %w", err)
	}
	return nil
}

// palette spreads n translucent colours around the hue circle.
func palette(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		r, g, b := hueToRGB(float64(i) / float64(max(n, 1)))
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 160}
	}
	return colors
}

func hueToRGB(h float64) (r, g, b uint8) {
	sector := int(h * 6)
	f := h*6 - float64(sector)
	up := uint8(255 * f)
	down := uint8(255 * (1 - f))
	switch sector % 6 {
	case 0:
		return 255, up, 0
	case 1:
		return down, 255, 0
	case 2:
		return 0, 255, up
	case 3:
		return 0, down, 255
	case 4:
		return up, 0, 255
	default:
		return 255, 0, down
	}
}
