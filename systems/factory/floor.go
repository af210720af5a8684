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

func CreateFloor(ecs *ecs.ECS, model assets.Descriptor, pos mgl64.Vec3, angles trackgen.Angles) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	components.Transform.SetValue(floor, components.TransformData{
		Pos:   pos.Sub(model.Offset),
		Yaw:   angles.Yaw,
		Pitch: angles.Pitch,
	})

	w, h := footprint(model.Width(), model.Length(), angles.Yaw)
	newObject(ecs, floor, pos, w, h, collision.Floor)

	return floor
}
