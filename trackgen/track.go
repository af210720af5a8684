package trackgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Track is a generated racetrack. It owns every object spawned for it until
// Destroy is called.
type Track struct {
	Points []mgl64.Vec3 // Centerline
	Left   []BoundaryPoint
	Right  []BoundaryPoint

	Walls            []Handle
	Floors           []Handle
	Checkpoints      []Handle
	Powerups         []Handle
	PowerupPositions []mgl64.Vec3

	spawner Spawner
}

// Destroy releases every spawned object. Calling it twice is harmless.
func (t *Track) Destroy() {
	if t.spawner == nil {
		return
	}
	for _, group := range [][]Handle{t.Walls, t.Floors, t.Checkpoints, t.Powerups} {
		for _, h := range group {
			t.spawner.Destroy(h)
		}
	}
	t.Walls, t.Floors, t.Checkpoints, t.Powerups = nil, nil, nil, nil
	t.PowerupPositions = nil
}

// Handles returns the number of objects the track currently owns.
func (t *Track) Handles() int {
	return len(t.Walls) + len(t.Floors) + len(t.Checkpoints) + len(t.Powerups)
}

// Bounds returns the corners of the box enclosing the centerline and both
// boundaries.
func (t *Track) Bounds() (lo, hi mgl64.Vec3) {
	first := true
	grow := func(p mgl64.Vec3) {
		if first {
			lo, hi = p, p
			first = false
			return
		}
		for i := range p {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}

	for _, p := range t.Points {
		grow(p)
	}
	for i := range t.Left {
		grow(t.Left[i].Pos)
		grow(t.Right[i].Pos)
	}
	return lo, hi
}
