package components

import (
	"github.com/automoto/racetrack/trackgen"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	Index   int // Waypoint the checkpoint spans
	Capsule trackgen.Capsule
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
