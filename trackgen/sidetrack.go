package trackgen

import (
	"math"

	"github.com/automoto/racetrack/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// SideTrack holds the two candidate boundary points on either side of a
// waypoint for one travel direction, and the wall orientation along it.
type SideTrack struct {
	Left   mgl64.Vec3
	Right  mgl64.Vec3
	Angles Angles
}

// CalculateSideTracks offsets start by spacing/2 perpendicular to dir in the
// ground plane. ok is false when dir has no length.
func CalculateSideTracks(start, dir mgl64.Vec3, spacing float64) (side SideTrack, ok bool) {
	dir = gamemath.Normalize(dir)
	if dir == (mgl64.Vec3{}) {
		return SideTrack{}, false
	}

	d := dir.Mul(spacing / 2)
	a, b, c := d[0], d[1], d[2]

	side.Left = mgl64.Vec3{start[0] - b, start[1] + a, start[2]}
	side.Right = mgl64.Vec3{start[0] + b, start[1] - a, start[2]}

	// Travel along the x axis has no yaw and vertical travel has no pitch
	if math.Abs(b) > gamemath.Epsilon {
		side.Angles.Yaw = -mgl64.RadToDeg(math.Atan(a / b))
	}
	if r := math.Sqrt(a*a + b*b); r > gamemath.Epsilon {
		side.Angles.Pitch = mgl64.RadToDeg(math.Atan(c / r))
	}

	return side, true
}
