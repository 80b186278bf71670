// Package polyio persists decomposed polygon lists.
//
// The format is a JSON array of polygons, each an array of [row, col]
// pairs. Files ending in .zst are zstd-compressed and files ending in .lz4
// are lz4-compressed; anything else is plain JSON.
package polyio

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names the compression applied around the JSON payload.
type Codec int

const (
	CodecNone Codec = iota
	CodecZstd
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	}
	return "none"
}

// CodecFor picks the codec from a file name's extension.
func CodecFor(name string) Codec {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return CodecZstd
	case ".lz4":
		return CodecLZ4
	}
	return CodecNone
}

// Encode writes polys to w as JSON.
func Encode(w io.Writer, polys []mapparser.Polygon) error {
	if polys == nil {
		polys = []mapparser.Polygon{}
	}
	if err := json.NewEncoder(w).Encode(polys); err != nil {
		return fmt.Errorf("encode polygons: %w", err)
	}
	return nil
}

// Decode reads a JSON polygon list from r.
func Decode(r io.Reader) ([]mapparser.Polygon, error) {
	var polys []mapparser.Polygon
	if err := json.NewDecoder(r).Decode(&polys); err != nil {
		return nil, fmt.Errorf("decode polygons: %w", err)
	}
	return polys, nil
}

// EncodeWith writes polys to w through codec c.
func EncodeWith(w io.Writer, c Codec, polys []mapparser.Polygon) error {
	switch c {
	case CodecZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("zstd writer: %w", err)
		}
		if err := Encode(zw, polys); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("zstd close: %w", err)
		}
		return nil
	case CodecLZ4:
		lw := lz4.NewWriter(w)
		if err := Encode(lw, polys); err != nil {
			lw.Close()
			return err
		}
		if err := lw.Close(); err != nil {
			return fmt.Errorf("lz4 close: %w", err)
		}
		return nil
	}
	return Encode(w, polys)
}

// DecodeWith reads polygons from r through codec c.
func DecodeWith(r io.Reader, c Codec) ([]mapparser.Polygon, error) {
	switch c {
	case CodecZstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		return Decode(zr)
	case CodecLZ4:
		return Decode(lz4.NewReader(r))
	}
	return Decode(r)
}

// WriteFile stores polys at path, compressed according to its extension.
// The data is written to a temporary file in the same directory and renamed
// into place, so a failed write leaves any previous file untouched.
func WriteFile(path string, polys []mapparser.Polygon) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = EncodeWith(tmp, CodecFor(path), polys); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

// ReadFile loads polygons stored at name within fsys.
func ReadFile(fsys fs.FS, name string) ([]mapparser.Polygon, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	polys, err := DecodeWith(f, CodecFor(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return polys, nil
}
