package trackdata

import (
	"slices"

	"github.com/automoto/racetrack/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ReduceColinear removes waypoints that lie on the straight line through their
// neighbours. It walks once from the second-to-last point down to the second,
// removing in place, so a point that only becomes colinear after a later
// neighbour is removed is kept. The first and last points are never removed.
// points is left unmodified.
func ReduceColinear(points []mgl64.Vec3, eps float64) []mgl64.Vec3 {
	points = slices.Clone(points)
	for i := len(points) - 2; i > 0; i-- {
		dir1 := gamemath.Normalize(points[i].Sub(points[i-1]))
		dir2 := gamemath.Normalize(points[i].Sub(points[i+1]))

		// Parallel directions would give the boundary lines no intersection
		if gamemath.IsZero(dir1.Cross(dir2), eps) {
			points = append(points[:i], points[i+1:]...)
		}
	}
	return points
}
