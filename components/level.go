package components

import (
	"github.com/automoto/maskpoly/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	Width  int
	Height int
	Config leveldata.LevelConfig
}

var Level = donburi.NewComponentType[LevelData]()
