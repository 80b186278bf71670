// Package polycache memoizes mask decompositions.
//
// Entries are keyed by an xxhash64 digest of the mask's dimensions and
// foreground bits and hold the zstd-compressed polygon list. A cache that
// cannot be read or written only costs a fresh decomposition.
package polycache

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"

	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/automoto/maskpoly/shared/polyio"
	"github.com/automoto/maskpoly/shared/raster"
	"github.com/cespare/xxhash/v2"
	"github.com/quasilyte/gdata"
)

// keyVersion changes whenever the decomposition output for a given mask
// would change.
const keyVersion = 1

// Store is the item storage the cache sits on. *gdata.Manager satisfies it.
// LoadItem returns nil data and a nil error for a missing key.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open returns the per-user data store for appName.
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	return m, nil
}

// Cache looks up and records decompositions.
type Cache struct {
	store Store
}

// New wraps store.
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Key derives the cache key for r. Only the foreground bit of each pixel is
// hashed, so masks differing only in partial alpha share a key.
func Key(r *raster.Raster) string {
	d := xxhash.New()
	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], keyVersion)
	binary.LittleEndian.PutUint64(hdr[8:], uint64(r.Height))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(r.Width))
	d.Write(hdr[:])

	var packed byte
	n := 0
	for _, a := range r.Alpha {
		packed <<= 1
		if a > 0 {
			packed |= 1
		}
		n++
		if n == 8 {
			d.Write([]byte{packed})
			packed, n = 0, 0
		}
	}
	if n > 0 {
		d.Write([]byte{packed << (8 - n)})
	}
	return fmt.Sprintf("mask_%016x", d.Sum64())
}

// Get returns the cached polygons for r.
func (c *Cache) Get(r *raster.Raster) ([]mapparser.Polygon, bool) {
	key := Key(r)
	data, err := c.store.LoadItem(key)
	if err != nil {
		log.Printf("[cache] load %s: %v", key, err)
		return nil, false
	}
	if data == nil {
		return nil, false
	}
	polys, err := polyio.DecodeWith(bytes.NewReader(data), polyio.CodecZstd)
	if err != nil {
		log.Printf("[cache] corrupt entry %s: %v", key, err)
		return nil, false
	}
	return polys, true
}

// Put records polys as the decomposition of r.
func (c *Cache) Put(r *raster.Raster, polys []mapparser.Polygon) error {
	key := Key(r)
	var buf bytes.Buffer
	if err := polyio.EncodeWith(&buf, polyio.CodecZstd, polys); err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := c.store.SaveItem(key, buf.Bytes()); err != nil {
		return fmt.Errorf("save cache entry %s: %w", key, err)
	}
	return nil
}

// Decompose returns the cached polygons for r, decomposing and recording
// them on a miss. Store failures are logged and never fail the call.
func (c *Cache) Decompose(r *raster.Raster, opts mapparser.Options) ([]mapparser.Polygon, error) {
	if polys, ok := c.Get(r); ok {
		log.Printf("[cache] hit %s (%d polygons)", Key(r), len(polys))
		return polys, nil
	}
	res, err := mapparser.Decompose(r, opts)
	if err != nil {
		return nil, err
	}
	polys := res.Polygons()
	if err := c.Put(r, polys); err != nil {
		log.Printf("[cache] %v", err)
	}
	return polys, nil
}
