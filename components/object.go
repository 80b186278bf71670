package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links a body entity to its broad-phase object in the level
// space. The object spans the body's bounding box.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the level's collision space. A world has exactly one.
var Space = donburi.NewComponentType[resolv.Space]()
