// Package trackgen turns a racetrack centerline into boundary polylines and
// tiles walls, floors, checkpoints and powerups along them. Placement goes
// through a Spawner so the geometry stays independent of any scene graph.
package trackgen

import (
	"github.com/automoto/racetrack/assets"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies what a placement instantiates.
type Kind int

const (
	KindWall Kind = iota
	KindFloor
	KindPowerup
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindFloor:
		return "floor"
	case KindPowerup:
		return "powerup"
	}
	return "unknown"
}

// Angles is an orientation in degrees.
type Angles struct {
	Yaw   float64 // Heading around the vertical axis
	Pitch float64 // Incline relative to the ground plane
}

// BoundaryPoint is a vertex of the left or right boundary polyline together
// with the orientation of the walls that start there.
type BoundaryPoint struct {
	Pos    mgl64.Vec3
	Angles Angles
}

// Capsule is a collision volume swept between two points.
type Capsule struct {
	A, B   mgl64.Vec3
	Radius float64
}

// Handle is whatever the host returns for a spawned object.
type Handle any

// Spawner instantiates track objects in the host engine.
type Spawner interface {
	Spawn(kind Kind, pos mgl64.Vec3, angles Angles) Handle
	SpawnCheckpoint(c Capsule, index int) Handle
	Destroy(h Handle)
}

// Dimensions are the reference sizes the layout is derived from.
type Dimensions struct {
	WallDim    mgl64.Vec3
	WallOffset mgl64.Vec3
	CarDim     mgl64.Vec3
}

// NewDimensions reads the wall and car sizes from asset descriptors.
func NewDimensions(wall, car assets.Descriptor) Dimensions {
	return Dimensions{
		WallDim:    wall.Dim,
		WallOffset: wall.Offset,
		CarDim:     car.Dim,
	}
}

// WallLength is the distance between consecutive wall instances.
func (d Dimensions) WallLength() float64 { return d.WallDim[1] }
