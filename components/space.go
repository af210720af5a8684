package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the broadphase every track object is registered in. Cell
// coordinates are relative to the racetrack origin.
var Space = donburi.NewComponentType[resolv.Space]()
