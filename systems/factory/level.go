package factory

import (
	"github.com/automoto/maskpoly/archetypes"
	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateLevel(world donburi.World, lvl *leveldata.Level, width, height int) *donburi.Entry {
	level := archetypes.Level.Spawn(world)
	components.Level.SetValue(level, components.LevelData{
		Name:   lvl.Name,
		Width:  width,
		Height: height,
		Config: lvl.Config,
	})
	return level
}
