package tags

import "github.com/yohamta/donburi"

var (
	StaticBody = donburi.NewTag().SetName("StaticBody")
	Actor      = donburi.NewTag().SetName("Actor")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvActor = "actor"
)
