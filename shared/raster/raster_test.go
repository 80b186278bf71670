package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode_AlphaOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	// Colour is irrelevant, only alpha counts.
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{G: 10, A: 7})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	r, err := Decode(bytes.NewReader(encodePNG(t, img)))
	require.NoError(t, err)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, 3, r.Width)
	assert.Equal(t, []uint8{255, 0, 0, 0, 0, 7}, r.Alpha)
	assert.True(t, r.Foreground(1, 2))
	assert.False(t, r.Foreground(0, 1))
	assert.Equal(t, 2, r.ForegroundCount())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(strings.NewReader("definitely not an image"))
	require.Error(t, err)

	var re *ResourceError
	require.True(t, errors.As(err, &re))
	assert.Empty(t, re.Path)
}

func TestLoad_FS(t *testing.T) {
	img := image.NewAlpha(image.Rect(0, 0, 2, 2))
	img.SetAlpha(1, 1, color.Alpha{A: 200})

	fsys := fstest.MapFS{
		"levels/mask.png": &fstest.MapFile{Data: encodePNG(t, img)},
		"levels/bad.png":  &fstest.MapFile{Data: []byte("xx")},
	}

	r, err := Load(fsys, "levels/mask.png")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 200}, r.Alpha)

	_, err = Load(fsys, "levels/missing.png")
	var re *ResourceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "levels/missing.png", re.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(fsys, "levels/bad.png")
	require.ErrorAs(t, err, &re)
}

func TestLoadFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.Set(0, 2, color.RGBA{A: 255})
	path := filepath.Join(t.TempDir(), "m.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, img), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 255}, r.Alpha)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.png"))
	var re *ResourceError
	require.ErrorAs(t, err, &re)
}

func TestFromImage_SubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 2, color.NRGBA{A: 9})
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	r := FromImage(sub)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, 2, r.Width)
	assert.Equal(t, []uint8{0, 0, 0, 9}, r.Alpha)
}

func TestFromImage_NoAlphaIsOpaque(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	r := FromImage(img)
	assert.Equal(t, []uint8{255, 255}, r.Alpha)
}

func TestFromRows(t *testing.T) {
	r, err := FromRows([][]uint8{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, uint8(1), r.At(0, 1))
	assert.True(t, r.InBounds(1, 1))
	assert.False(t, r.InBounds(2, 0))

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyRows)
	_, err = FromRows([][]uint8{{1}, {}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}
