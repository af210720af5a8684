package factory

import (
	"github.com/automoto/racetrack/archetypes"
	"github.com/automoto/racetrack/assets"
	"github.com/automoto/racetrack/collision"
	"github.com/automoto/racetrack/components"
	"github.com/automoto/racetrack/trackgen"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall places a wall model so its bounding box is centred on pos and
// rests on the ground at pos.
func CreateWall(ecs *ecs.ECS, model assets.Descriptor, pos mgl64.Vec3, angles trackgen.Angles) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	center := pos.Add(mgl64.Vec3{0, 0, model.Height() / 2})
	components.Transform.SetValue(wall, components.TransformData{
		Pos:   center.Sub(model.Offset),
		Yaw:   angles.Yaw,
		Pitch: angles.Pitch,
	})

	w, h := footprint(model.Width(), model.Length(), angles.Yaw)
	newObject(ecs, wall, center, w, h, collision.Wall)

	return wall
}
