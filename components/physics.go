package components

import (
	"github.com/automoto/maskpoly/shared/gamemath"
	"github.com/yohamta/donburi"
)

type BodyKind int

const (
	StaticBody BodyKind = iota
	DynamicBody
)

// BodyData is a rigid body built from one polygon. Vertices and Hull are
// relative to Position, the vertex centroid in world space.
type BodyData struct {
	Kind     BodyKind
	Position gamemath.Vec
	Vertices []gamemath.Vec
	Hull     []gamemath.Vec
	Friction float64

	// Dynamic bodies only
	Mass     float64
	Moment   float64
	Velocity gamemath.Vec
	MaxSpeed float64
	OnGround bool
}

var Body = donburi.NewComponentType[BodyData]()
