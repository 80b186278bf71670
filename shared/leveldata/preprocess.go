package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/maskpoly/config"
	"github.com/automoto/maskpoly/shared/gamemath"
	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/automoto/maskpoly/shared/polyio"
	"github.com/automoto/maskpoly/shared/raster"
)

// Decomposer turns a mask into polygons. *polycache.Cache satisfies it.
type Decomposer interface {
	Decompose(r *raster.Raster, opts mapparser.Options) ([]mapparser.Polygon, error)
}

// DirectDecomposer decomposes every mask from scratch.
type DirectDecomposer struct{}

func (DirectDecomposer) Decompose(r *raster.Raster, opts mapparser.Options) ([]mapparser.Polygon, error) {
	res, err := mapparser.Decompose(r, opts)
	if err != nil {
		return nil, err
	}
	return res.Polygons(), nil
}

// Output describes one preprocessed level.
type Output struct {
	Level   string
	Sources Sources
	MapPath string
	CfgPath string
	Map     []mapparser.Polygon
	Config  LevelConfig
}

// Preprocessor converts level mask images under Root into the polygon and
// config files the game loads.
type Preprocessor struct {
	Root    string
	Level   config.LevelConfig
	Physics config.PhysicsConfig
	Options mapparser.Options

	// Decomposer defaults to decomposing every mask from scratch.
	Decomposer Decomposer

	fsys fs.FS
}

// NewPreprocessor returns a Preprocessor for the levels under cfg.Level.Root.
func NewPreprocessor(cfg *config.Config) *Preprocessor {
	return &Preprocessor{
		Root:    cfg.Level.Root,
		Level:   cfg.Level,
		Physics: cfg.Physics,
		Options: mapparser.Options{Workers: cfg.Parser.Workers},
	}
}

func (p *Preprocessor) filesystem() fs.FS {
	if p.fsys == nil {
		p.fsys = os.DirFS(p.Root)
	}
	return p.fsys
}

func (p *Preprocessor) decomposer() Decomposer {
	if p.Decomposer == nil {
		return DirectDecomposer{}
	}
	return p.Decomposer
}

// Run preprocesses the level called name: the map mask is decomposed into
// MAP.json and the first actor polygon, its centroid and the physics
// constants are written to CONFIG.json.
func (p *Preprocessor) Run(name string) (*Output, error) {
	fsys := p.filesystem()
	info, err := fs.Stat(fsys, name)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoLevel, filepath.Join(p.Root, name))
	}

	src, err := ResolveSources(fsys, name, p.Level)
	if err != nil {
		return nil, err
	}

	mapPolys, err := p.parse(fsys, src.MapBody)
	if err != nil {
		return nil, fmt.Errorf("map body: %w", err)
	}
	actorPolys, err := p.parse(fsys, src.ActorBody)
	if err != nil {
		return nil, fmt.Errorf("actor body: %w", err)
	}
	if len(actorPolys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoActorShape, src.ActorBody)
	}

	out := &Output{
		Level:   name,
		Sources: src,
		MapPath: filepath.Join(p.Root, name, p.Level.MapBodyFile),
		CfgPath: filepath.Join(p.Root, name, p.Level.ConfigFile),
		Map:     mapPolys,
		Config:  p.levelConfig(actorPolys[0]),
	}

	if err := polyio.WriteFile(out.MapPath, out.Map); err != nil {
		return nil, err
	}
	if err := writeConfig(out.CfgPath, &out.Config); err != nil {
		return nil, err
	}

	log.Printf("[preprocess] %s: %d map polygons, actor body %d vertices, offset (%.2f, %.2f)",
		name, len(out.Map), len(out.Config.ActorBody), out.Config.ActorOffset[0], out.Config.ActorOffset[1])
	return out, nil
}

func (p *Preprocessor) parse(fsys fs.FS, name string) ([]mapparser.Polygon, error) {
	r, err := raster.Load(fsys, name)
	if err != nil {
		return nil, err
	}
	return p.decomposer().Decompose(r, p.Options)
}

func (p *Preprocessor) levelConfig(actor mapparser.Polygon) LevelConfig {
	return LevelConfig{
		Gravity:       p.Physics.Gravity,
		Damping:       p.Physics.Damping,
		Friction:      p.Physics.Friction,
		FPS:           p.Physics.FPS,
		ActorMass:     p.Physics.ActorMass,
		ActorMovement: p.Physics.ActorMovement,
		ActorBody:     actor,
		ActorOffset:   ActorOffset(actor),
	}
}

// ActorOffset returns the vertex centroid of poly as (row, col).
func ActorOffset(poly mapparser.Polygon) [2]float64 {
	pts := make([]gamemath.Vec, len(poly))
	for i, pt := range poly {
		pts[i] = gamemath.FromRowCol(pt.Row, pt.Col)
	}
	c := gamemath.Centroid(pts)
	return [2]float64{c.Y, c.X}
}

func writeConfig(path string, lc *LevelConfig) error {
	data, err := json.Marshal(lc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(fmt.Errorf("rename into %s: %w", path, err), os.Remove(tmp))
	}
	return nil
}
