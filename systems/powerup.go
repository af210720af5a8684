package systems

import (
	"github.com/automoto/racetrack/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the simulated time advanced per update.
const tickSeconds float32 = 1.0 / 60

// UpdatePowerups advances each powerup's hover animation, restarting it when
// it completes.
func UpdatePowerups(ecs *ecs.ECS) {
	for e := range components.Powerup.Iter(ecs.World) {
		powerup := components.Powerup.Get(e)
		if powerup.Hover == nil {
			continue
		}

		height, _, done := powerup.Hover.Update(tickSeconds)
		if done {
			powerup.Hover.Reset()
		}

		components.Transform.Get(e).Pos = powerup.Base.Add(mgl64.Vec3{0, 0, float64(height)})
	}
}
