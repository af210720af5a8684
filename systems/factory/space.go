package factory

import (
	"math"

	"github.com/automoto/racetrack/archetypes"
	"github.com/automoto/racetrack/collision"
	"github.com/automoto/racetrack/components"
	cfg "github.com/automoto/racetrack/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase covering the box lo..hi plus a margin on
// every side. Its transform holds the world position of cell (0, 0).
func CreateSpace(ecs *ecs.ECS, lo, hi mgl64.Vec3) *donburi.Entry {
	margin := cfg.Collision.Margin
	origin := mgl64.Vec3{lo.X() - margin, lo.Y() - margin, 0}

	width := int(math.Ceil(hi.X() - lo.X() + 2*margin))
	height := int(math.Ceil(hi.Y() - lo.Y() + 2*margin))

	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cfg.Collision.CellSize, cfg.Collision.CellSize))
	components.Transform.SetValue(space, components.TransformData{Pos: origin})
	return space
}

// SpaceOrigin returns the world position of the space's cell (0, 0), or the
// world origin when there is no space.
func SpaceOrigin(world donburi.World) mgl64.Vec3 {
	if spaceEntry, ok := components.Space.First(world); ok {
		return components.Transform.Get(spaceEntry).Pos
	}
	return mgl64.Vec3{}
}

// newObject creates a w by h collision box centred on center, links it to
// entry and registers it with the space.
func newObject(ecs *ecs.ECS, entry *donburi.Entry, center mgl64.Vec3, w, h float64, layers collision.Mask) *resolv.Object {
	origin := SpaceOrigin(ecs.World)
	x := center.X() - origin.X() - w/2
	y := center.Y() - origin.Y() - h/2

	obj := resolv.NewObject(x, y, w, h, collision.Track.Names(layers)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup

	components.Object.SetValue(entry, components.ObjectData{Object: obj, Layers: layers})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return obj
}

// footprint is the axis aligned extent of a w by l rectangle rotated by yaw
// degrees around the vertical axis.
func footprint(w, l, yaw float64) (float64, float64) {
	sin, cos := math.Sincos(mgl64.DegToRad(yaw))
	sin, cos = math.Abs(sin), math.Abs(cos)
	return w*cos + l*sin, w*sin + l*cos
}

// Destroy removes entry from the world and its collision object from the space.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() {
		return
	}

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if spaceEntry, ok := components.Space.First(ecs.World); ok && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}

	ecs.World.Remove(entry.Entity())
}
