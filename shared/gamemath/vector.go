package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for near-zero checks on track geometry.
const Epsilon = 1e-9

// Normalize returns v scaled to unit length, or the zero vector when v has no length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// IsZero reports whether every component of v is within eps of zero.
func IsZero(v mgl64.Vec3, eps float64) bool {
	return math.Abs(v[0]) <= eps && math.Abs(v[1]) <= eps && math.Abs(v[2]) <= eps
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Line is an infinite line through Point along Dir.
type Line struct {
	Point mgl64.Vec3
	Dir   mgl64.Vec3
}

// IntersectLines intersects two lines in the ground (x/y) plane. The height of
// the result follows the first line. ok is false when the lines are parallel or
// either direction is zero; the first line's point is returned in that case.
func IntersectLines(l1, l2 Line) (p mgl64.Vec3, ok bool) {
	d1, d2 := l1.Dir, l2.Dir
	denom := d1[0]*d2[1] - d1[1]*d2[0]
	if math.Abs(denom) < Epsilon {
		return l1.Point, false
	}

	delta := l2.Point.Sub(l1.Point)
	t := (delta[0]*d2[1] - delta[1]*d2[0]) / denom
	return l1.Point.Add(d1.Mul(t)), true
}
