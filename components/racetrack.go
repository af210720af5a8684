package components

import (
	"github.com/automoto/racetrack/shared/trackdata"
	"github.com/automoto/racetrack/trackgen"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type RacetrackData struct {
	Data   *trackdata.TrackData
	Track  *trackgen.Track
	Origin mgl64.Vec3 // World position of space cell (0, 0)
	Seed   int64
}

var Racetrack = donburi.NewComponentType[RacetrackData]()
