// Package leveldata prepares level collision data from mask images and loads
// it back for the game. It has no dependencies on donburi or resolv, pure data
// only.
package leveldata

import (
	"errors"

	"github.com/automoto/maskpoly/shared/mapparser"
)

var (
	// ErrNoLevel is returned when the level directory does not exist.
	ErrNoLevel = errors.New("leveldata: level not found")
	// ErrNoActorShape is returned when the actor mask has no foreground.
	ErrNoActorShape = errors.New("leveldata: actor mask yields no polygon")
	// ErrMissingLayer is returned when a Tiled map lacks a mask image layer.
	ErrMissingLayer = errors.New("leveldata: image layer not found")
)

// Sources locates the mask images of a level within the level filesystem.
type Sources struct {
	MapBody   string
	ActorBody string
}

// LevelConfig is the per-level CONFIG.json document read by the game at
// start-up. Polygon coordinates are (row, col); CHARA_OFFSET is the vertex
// centroid of the actor body, also (row, col).
type LevelConfig struct {
	Gravity       [2]float64        `json:"GRAVITY"`
	Damping       float64           `json:"DAMPING"`
	Friction      float64           `json:"FRICTION"`
	FPS           float64           `json:"FPS"`
	ActorMass     float64           `json:"CHARA_MASS"`
	ActorMovement float64           `json:"CHARA_MOVEMENT"`
	ActorBody     mapparser.Polygon `json:"CHARA_BODY"`
	ActorOffset   [2]float64        `json:"CHARA_OFFSET"`
}

// Level holds everything the collision world needs for one level.
type Level struct {
	Name      string
	Map       []mapparser.Polygon
	Config    LevelConfig
	MapWidth  int
	MapHeight int
}
