package factory

import (
	"math"

	"github.com/automoto/racetrack/archetypes"
	"github.com/automoto/racetrack/collision"
	"github.com/automoto/racetrack/components"
	"github.com/automoto/racetrack/trackgen"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint spanning the capsule c. The collision
// box is the capsule's bounding box in the ground plane.
func CreateCheckpoint(ecs *ecs.ECS, c trackgen.Capsule, index int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Index:   index,
		Capsule: c,
	})

	w := math.Abs(c.B.X()-c.A.X()) + 2*c.Radius
	h := math.Abs(c.B.Y()-c.A.Y()) + 2*c.Radius
	center := c.A.Add(c.B).Mul(0.5)
	newObject(ecs, checkpoint, center, w, h, collision.Checkpoint)

	return checkpoint
}
