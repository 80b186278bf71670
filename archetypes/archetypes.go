package archetypes

import (
	"slices"

	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/tags"
	"github.com/yohamta/donburi"
)

var (
	StaticBody = newArchetype(
		tags.StaticBody,
		components.Body,
		components.Object,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(slices.Concat(a.components, cs)...))
}
