package trackgen

import (
	"github.com/automoto/racetrack/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ComputeBoundaries returns the left and right boundary vertices for every
// waypoint of the closed loop. Each vertex is where the offset line of the
// incoming segment meets the offset line of the outgoing one, which gives
// mitered corners. The angles stored with a vertex are those of the segment
// leaving it.
func ComputeBoundaries(points []mgl64.Vec3, spacing float64) (left, right []BoundaryPoint) {
	ring := gamemath.Ring[mgl64.Vec3](points)
	left = make([]BoundaryPoint, ring.Len())
	right = make([]BoundaryPoint, ring.Len())

	for i, point := range ring {
		dir1 := ring.Prev(i).Sub(point)
		dir2 := ring.Next(i).Sub(point)

		// Seen from the waypoint the two directions point away from each
		// other, so the left side of one is the right side of the other.
		back, okBack := CalculateSideTracks(point, dir1, spacing)
		ahead, okAhead := CalculateSideTracks(point, dir2, spacing)

		switch {
		case okBack && okAhead:
			l, _ := gamemath.IntersectLines(
				gamemath.Line{Point: back.Left, Dir: dir1},
				gamemath.Line{Point: ahead.Right, Dir: dir2},
			)
			r, _ := gamemath.IntersectLines(
				gamemath.Line{Point: back.Right, Dir: dir1.Mul(-1)},
				gamemath.Line{Point: ahead.Left, Dir: dir2.Mul(-1)},
			)
			left[i] = BoundaryPoint{Pos: l, Angles: ahead.Angles}
			right[i] = BoundaryPoint{Pos: r, Angles: ahead.Angles}
		case okAhead:
			left[i] = BoundaryPoint{Pos: ahead.Right, Angles: ahead.Angles}
			right[i] = BoundaryPoint{Pos: ahead.Left, Angles: ahead.Angles}
		case okBack:
			left[i] = BoundaryPoint{Pos: back.Left}
			right[i] = BoundaryPoint{Pos: back.Right}
		default:
			left[i] = BoundaryPoint{Pos: point}
			right[i] = BoundaryPoint{Pos: point}
		}
	}

	return left, right
}
