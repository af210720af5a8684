package trackgen

import (
	"fmt"
	"math"

	"github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/shared/gamemath"
	"github.com/automoto/racetrack/shared/trackdata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/samber/lo"
)

// Rand is the random source used for powerup placement. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Generator lays out a racetrack from a reduced centerline.
type Generator struct {
	Dim         Dimensions
	WallSpacing float64 // Track width between the two boundaries

	PowerupChance float64
	PowerupMin    float64
	PowerupMax    float64

	spawner Spawner
}

// NewGenerator derives the track width from the wall and car dimensions: wide
// enough for the largest wall extent plus several car widths.
func NewGenerator(dim Dimensions, spawner Spawner) *Generator {
	return &Generator{
		Dim:           dim,
		WallSpacing:   lo.Max(dim.WallDim[:]) + dim.CarDim[0]*config.Track.CarWidthMultiplier,
		PowerupChance: config.Powerup.SpawnChance,
		PowerupMin:    config.Powerup.MinFraction,
		PowerupMax:    config.Powerup.MaxFraction,
		spawner:       spawner,
	}
}

// Generate computes the boundaries of the closed loop through points and
// spawns its walls, floors, checkpoints and powerups.
func (g *Generator) Generate(points []mgl64.Vec3, rng Rand) (*Track, error) {
	t, err := g.Layout(points)
	if err != nil {
		return nil, err
	}
	g.Populate(t, rng)
	return t, nil
}

// Layout computes the boundary polylines without spawning anything, so the
// caller can size its collision space before Populate.
func (g *Generator) Layout(points []mgl64.Vec3) (*Track, error) {
	if len(points) < config.Track.MinPoints {
		return nil, fmt.Errorf("generate track: %w (%d points)", trackdata.ErrNotEnoughPoints, len(points))
	}

	t := &Track{
		Points:  points,
		spawner: g.spawner,
	}
	t.Left, t.Right = ComputeBoundaries(points, g.WallSpacing)
	return t, nil
}

// Populate spawns walls and floors along both boundaries, then the
// checkpoints and powerups.
func (g *Generator) Populate(t *Track, rng Rand) {
	ring := gamemath.Ring[BoundaryPoint](t.Left)
	for i := range ring {
		next := ring.Index(i + 1)
		g.TileSegment(t, t.Left[i].Pos, t.Left[next].Pos, t.Left[i].Angles)
		g.TileSegment(t, t.Right[i].Pos, t.Right[next].Pos, t.Right[i].Angles)
	}

	g.GenerateCheckpoints(t)
	g.GeneratePowerups(t, rng)
}

// TileSegment fills the straight line from start to end with walls and floors
// spaced one wall length apart, all sharing the segment orientation. The count
// is rounded up, so the last wall may reach past end. Returns the number of
// walls placed.
func (g *Generator) TileSegment(t *Track, start, end mgl64.Vec3, angles Angles) int {
	dir := end.Sub(start)
	distance := dir.Len()
	if distance == 0 {
		return 0
	}

	wallSize := g.Dim.WallLength()
	if wallSize <= 0 {
		return 0
	}

	n := int(math.Ceil(distance / wallSize))
	for i := 0; i < n; i++ {
		pos := start.Add(dir.Mul(float64(i) * wallSize / distance))

		t.Walls = append(t.Walls, g.spawner.Spawn(KindWall, pos, angles))
		t.Floors = append(t.Floors, g.spawner.Spawn(KindFloor, pos, angles))
	}

	return n
}

// GenerateCheckpoints spans a capsule from the left to the right boundary at
// every waypoint, tagged with the waypoint index.
func (g *Generator) GenerateCheckpoints(t *Track) {
	radius := g.Dim.WallLength()

	for i := range t.Left {
		c := Capsule{A: t.Left[i].Pos, B: t.Right[i].Pos, Radius: radius}
		t.Checkpoints = append(t.Checkpoints, g.spawner.SpawnCheckpoint(c, i))
	}
}

// GeneratePowerups gives every centerline segment an independent chance of
// holding one powerup, placed away from the segment ends.
func (g *Generator) GeneratePowerups(t *Track, rng Rand) {
	ring := gamemath.Ring[mgl64.Vec3](t.Points)

	for i, p1 := range ring {
		if rng.Float64() > g.PowerupChance {
			continue
		}

		r := g.PowerupMin + (g.PowerupMax-g.PowerupMin)*rng.Float64()
		pos := gamemath.Lerp(p1, ring.Next(i), r)

		t.PowerupPositions = append(t.PowerupPositions, pos)
		t.Powerups = append(t.Powerups, g.spawner.Spawn(KindPowerup, pos, Angles{}))
	}
}
