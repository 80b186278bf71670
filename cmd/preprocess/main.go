package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/config"
	"github.com/automoto/maskpoly/shared/debugdump"
	"github.com/automoto/maskpoly/shared/leveldata"
	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/automoto/maskpoly/shared/polycache"
	"github.com/automoto/maskpoly/shared/polyio"
	"github.com/automoto/maskpoly/shared/raster"
	"github.com/automoto/maskpoly/systems"
)

func main() {
	cfgPath := flag.String("config", "", "JSON config file (empty = built-in defaults)")
	root := flag.String("root", "", "Level root directory (overrides config)")
	level := flag.String("level", "level1", "Level to preprocess")
	workers := flag.Int("workers", 0, "Blobs decomposed concurrently (0 = config value)")
	debugDir := flag.String("debug-dir", "", "Write blob images and a polygon plot to this directory")
	useCache := flag.Bool("cache", false, "Reuse decompositions from the user data cache")
	image := flag.String("image", "", "Decompose a single mask image instead of a level")
	out := flag.String("out", "", "Output for -image: .json, .zst or .lz4 (empty = stdout)")
	simulate := flag.Int("simulate", 0, "Step the preprocessed level's collision world this many ticks")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *root != "" {
		cfg.Level.Root = *root
	}
	if *workers > 0 {
		cfg.Parser.Workers = *workers
	}
	if *debugDir != "" {
		cfg.Parser.DebugDir = *debugDir
	}
	if *useCache {
		cfg.Cache.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	opts := mapparser.Options{Workers: cfg.Parser.Workers}
	if cfg.Parser.DebugDir != "" {
		opts.OnBlobs = debugdump.BlobHook(filepath.Join(cfg.Parser.DebugDir, "blobs"))
	}

	var dec leveldata.Decomposer = leveldata.DirectDecomposer{}
	if cfg.Cache.Enabled {
		store, err := polycache.Open(cfg.Cache.AppName)
		if err != nil {
			log.Printf("[cache] disabled: %v", err)
		} else {
			dec = polycache.New(store)
		}
	}

	if *image != "" {
		polys := decomposeImage(*image, dec, opts)
		writeDebugPlot(cfg.Parser.DebugDir, filepath.Base(*image), polys)
		if *out == "" {
			if err := polyio.Encode(os.Stdout, polys); err != nil {
				log.Fatalf("Failed to write polygons: %v", err)
			}
			return
		}
		if err := polyio.WriteFile(*out, polys); err != nil {
			log.Fatalf("Failed to write polygons: %v", err)
		}
		log.Printf("[preprocess] %s: %d polygons -> %s", *image, len(polys), *out)
		return
	}

	p := leveldata.NewPreprocessor(cfg)
	p.Options = opts
	p.Decomposer = dec
	res, err := p.Run(*level)
	if err != nil {
		log.Fatalf("Failed to preprocess level %s: %v", *level, err)
	}
	writeDebugPlot(cfg.Parser.DebugDir, *level, res.Map)

	if *simulate > 0 {
		runSimulation(cfg, *level, *simulate)
	}
}

func decomposeImage(path string, dec leveldata.Decomposer, opts mapparser.Options) []mapparser.Polygon {
	r, err := raster.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load mask: %v", err)
	}
	polys, err := dec.Decompose(r, opts)
	if err != nil {
		log.Fatalf("Failed to decompose %s: %v", path, err)
	}
	return polys
}

func writeDebugPlot(dir, name string, polys []mapparser.Polygon) {
	if dir == "" {
		return
	}
	path := filepath.Join(dir, name+".polygons.png")
	if err := debugdump.PlotPolygons(path, polys); err != nil {
		log.Printf("[debug] %v", err)
		return
	}
	log.Printf("[debug] polygon plot written to %s", path)
}

func runSimulation(cfg *config.Config, name string, ticks int) {
	lvl, err := leveldata.LoadLevel(os.DirFS(cfg.Level.Root), name, cfg.Level)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", name, err)
	}
	cl, err := systems.NewCollisionLevel(lvl, cfg.Collision)
	if err != nil {
		log.Fatalf("Failed to build collision world: %v", err)
	}
	for i := 0; i < ticks; i++ {
		cl.Step()
	}
	body := components.Body.Get(cl.Actor)
	log.Printf("[simulate] after %d ticks: actor at (%.2f, %.2f), velocity (%.2f, %.2f), on ground %v",
		ticks, body.Position.X, body.Position.Y, body.Velocity.X, body.Velocity.Y, body.OnGround)
}
