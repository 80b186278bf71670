package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PhysicsConfig contains the simulation constants handed to the physics loop
// alongside the decomposed map.
type PhysicsConfig struct {
	Gravity  [2]float64 `json:"gravity"`
	Damping  float64    `json:"damping"`
	Friction float64    `json:"friction"`
	FPS      float64    `json:"fps"`

	// Actor body
	ActorMass     float64 `json:"actor_mass"`
	ActorMovement float64 `json:"actor_movement"` // moment of the actor body
}

// LevelConfig names the files that make up a level directory.
type LevelConfig struct {
	Root string `json:"root"`

	// Inputs
	MapBodyRawFile string `json:"map_body_raw_file"` // map mask image
	ActorBodyFile  string `json:"actor_body_file"`   // actor mask image
	TiledFile      string `json:"tiled_file"`        // optional Tiled map naming the masks
	MapLayer       string `json:"map_layer"`         // image layer holding the map mask
	ActorLayer     string `json:"actor_layer"`       // image layer holding the actor mask

	// Outputs
	MapBodyFile string `json:"map_body_file"`
	ConfigFile  string `json:"config_file"`
}

// ParserConfig tunes the decomposition run.
type ParserConfig struct {
	Workers  int    `json:"workers"`   // concurrent blobs; 0 or 1 runs sequentially
	DebugDir string `json:"debug_dir"` // blob images and polygon plots land here when set
}

// CacheConfig controls the on-disk decomposition cache.
type CacheConfig struct {
	Enabled bool   `json:"enabled"`
	AppName string `json:"app_name"`
}

// CollisionConfig sizes the collision space built from a level.
type CollisionConfig struct {
	CellWidth     int     `json:"cell_width"`
	CellHeight    int     `json:"cell_height"`
	MaxActorSpeed float64 `json:"max_actor_speed"`
}

// Config is the root configuration.
type Config struct {
	Physics   PhysicsConfig   `json:"physics"`
	Level     LevelConfig     `json:"level"`
	Parser    ParserConfig    `json:"parser"`
	Cache     CacheConfig     `json:"cache"`
	Collision CollisionConfig `json:"collision"`
}

// Default returns a fresh Config with the stock values.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:       [2]float64{0.0, 900.0},
			Damping:       0.8,
			Friction:      1.0,
			FPS:           50.0,
			ActorMass:     100,
			ActorMovement: 1000,
		},
		Level: LevelConfig{
			Root:           "levels",
			MapBodyRawFile: "MAP_BODY.png",
			ActorBodyFile:  "CHARA_BODY.png",
			TiledFile:      "level.tmx",
			MapLayer:       "MapBody",
			ActorLayer:     "CharaBody",
			MapBodyFile:    "MAP.json",
			ConfigFile:     "CONFIG.json",
		},
		Parser: ParserConfig{
			Workers: 1,
		},
		Cache: CacheConfig{
			Enabled: false,
			AppName: "maskpoly",
		},
		Collision: CollisionConfig{
			CellWidth:     16,
			CellHeight:    16,
			MaxActorSpeed: 200,
		},
	}
}

const maxConfigSize = 1 << 20

// Load reads a JSON config file and overlays it on Default. Fields missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every setting that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.FPS <= 0 {
		errs = append(errs, fmt.Errorf("physics.fps must be positive, got %v", c.Physics.FPS))
	}
	if c.Physics.ActorMass <= 0 {
		errs = append(errs, fmt.Errorf("physics.actor_mass must be positive, got %v", c.Physics.ActorMass))
	}
	if c.Parser.Workers < 0 {
		errs = append(errs, fmt.Errorf("parser.workers must not be negative, got %d", c.Parser.Workers))
	}
	if c.Level.MapBodyRawFile == "" || c.Level.MapBodyFile == "" || c.Level.ConfigFile == "" {
		errs = append(errs, errors.New("level file names must not be empty"))
	}
	if c.Collision.CellWidth <= 0 || c.Collision.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("collision cell size must be positive, got %dx%d",
			c.Collision.CellWidth, c.Collision.CellHeight))
	}
	if c.Cache.Enabled && c.Cache.AppName == "" {
		errs = append(errs, errors.New("cache.app_name is required when the cache is enabled"))
	}
	return errors.Join(errs...)
}
