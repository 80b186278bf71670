package leveldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/maskpoly/config"
	"github.com/automoto/maskpoly/shared/polyio"
	"github.com/lafriks/go-tiled"
)

// ResolveSources finds the mask images for the level in dir. A Tiled map
// named by lc.TiledFile takes precedence: its image layers lc.MapLayer and
// lc.ActorLayer point at the masks, relative to the map file. Without one the
// fixed file names lc.MapBodyRawFile and lc.ActorBodyFile are used.
func ResolveSources(fsys fs.FS, dir string, lc config.LevelConfig) (Sources, error) {
	tmxPath := path.Join(dir, lc.TiledFile)
	if lc.TiledFile == "" {
		return defaultSources(dir, lc), nil
	}
	if _, err := fs.Stat(fsys, tmxPath); errors.Is(err, fs.ErrNotExist) {
		return defaultSources(dir, lc), nil
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Sources{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var src Sources
	for _, layer := range levelMap.ImageLayers {
		if layer.Image == nil || layer.Image.Source == "" {
			continue
		}
		switch layer.Name {
		case lc.MapLayer:
			src.MapBody = path.Join(dir, layer.Image.Source)
		case lc.ActorLayer:
			src.ActorBody = path.Join(dir, layer.Image.Source)
		}
	}
	if src.MapBody == "" {
		return Sources{}, fmt.Errorf("%w: %q in %s", ErrMissingLayer, lc.MapLayer, tmxPath)
	}
	if src.ActorBody == "" {
		return Sources{}, fmt.Errorf("%w: %q in %s", ErrMissingLayer, lc.ActorLayer, tmxPath)
	}
	return src, nil
}

func defaultSources(dir string, lc config.LevelConfig) Sources {
	return Sources{
		MapBody:   path.Join(dir, lc.MapBodyRawFile),
		ActorBody: path.Join(dir, lc.ActorBodyFile),
	}
}

// LoadLevel reads the preprocessed map polygons and CONFIG.json of the level
// called name. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, name string, lc config.LevelConfig) (*Level, error) {
	mapPath := path.Join(name, lc.MapBodyFile)
	polys, err := polyio.ReadFile(fsys, mapPath)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", name, err)
	}

	cfgPath := path.Join(name, lc.ConfigFile)
	data, err := fs.ReadFile(fsys, cfgPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", cfgPath, err)
	}
	lvl := &Level{Name: name, Map: polys}
	if err := json.Unmarshal(data, &lvl.Config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfgPath, err)
	}

	// Map extent is the far corner over all vertices.
	for _, poly := range polys {
		for _, p := range poly {
			lvl.MapHeight = max(lvl.MapHeight, p.Row)
			lvl.MapWidth = max(lvl.MapWidth, p.Col)
		}
	}
	return lvl, nil
}

// LoadAllLevels discovers every preprocessed level directory in fsys (those
// holding lc.ConfigFile), loads each, and returns a map keyed by level name
// plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, lc config.LevelConfig) (map[string]*Level, []string, error) {
	pattern := path.Join("*", lc.ConfigFile)
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no preprocessed levels found: %w", ErrNoLevel)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := path.Dir(m)
		lvl, err := LoadLevel(fsys, name, lc)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", name, err)
		}
		levels[name] = lvl
		names = append(names, name)
	}

	sort.Strings(names)
	return levels, names, nil
}
