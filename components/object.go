package components

import (
	"github.com/automoto/racetrack/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
	Layers collision.Mask
}

var Object = donburi.NewComponentType[ObjectData]()
