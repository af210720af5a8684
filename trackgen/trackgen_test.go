package trackgen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/racetrack/shared/trackdata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

type placement struct {
	Kind   Kind
	Pos    mgl64.Vec3
	Angles Angles
}

type checkpoint struct {
	Capsule Capsule
	Index   int
}

type recordingSpawner struct {
	placements  []placement
	checkpoints []checkpoint
	destroyed   int
	next        int
}

func (s *recordingSpawner) Spawn(kind Kind, pos mgl64.Vec3, angles Angles) Handle {
	s.placements = append(s.placements, placement{Kind: kind, Pos: pos, Angles: angles})
	s.next++
	return s.next
}

func (s *recordingSpawner) SpawnCheckpoint(c Capsule, index int) Handle {
	s.checkpoints = append(s.checkpoints, checkpoint{Capsule: c, Index: index})
	s.next++
	return s.next
}

func (s *recordingSpawner) Destroy(Handle) { s.destroyed++ }

func (s *recordingSpawner) byKind(kind Kind) []placement {
	var out []placement
	for _, p := range s.placements {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// scriptedRand returns a fixed sequence of draws.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	v := r.values[r.i]
	r.i++
	return v
}

// never spawns a powerup
type noPowerups struct{}

func (noPowerups) Float64() float64 { return 1 }

func testDimensions() Dimensions {
	return Dimensions{
		WallDim: mgl64.Vec3{1, 2, 1.5},
		CarDim:  mgl64.Vec3{1.6, 3.2, 1.1},
	}
}

func square(size float64) []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {size, 0, 0}, {size, size, 0}, {0, size, 0}}
}

// distanceToLine is the ground-plane distance from p to the line through a and b.
func distanceToLine(p, a, b mgl64.Vec3) float64 {
	d := b.Sub(a)
	cross := d[0]*(p[1]-a[1]) - d[1]*(p[0]-a[0])
	return math.Abs(cross) / math.Hypot(d[0], d[1])
}

func TestCalculateSideTracks(t *testing.T) {
	tests := []struct {
		name  string
		dir   mgl64.Vec3
		left  mgl64.Vec3
		right mgl64.Vec3
		yaw   float64
		pitch float64
	}{
		{name: "along x", dir: mgl64.Vec3{3, 0, 0}, left: mgl64.Vec3{0, 5, 0}, right: mgl64.Vec3{0, -5, 0}},
		{name: "along y", dir: mgl64.Vec3{0, 7, 0}, left: mgl64.Vec3{-5, 0, 0}, right: mgl64.Vec3{5, 0, 0}},
		{
			name:  "diagonal",
			dir:   mgl64.Vec3{1, 1, 0},
			left:  mgl64.Vec3{-5 / math.Sqrt2, 5 / math.Sqrt2, 0},
			right: mgl64.Vec3{5 / math.Sqrt2, -5 / math.Sqrt2, 0},
			yaw:   -45,
		},
		{
			name:  "climbing",
			dir:   mgl64.Vec3{0, 1, 1},
			left:  mgl64.Vec3{-5 / math.Sqrt2, 0, 0},
			right: mgl64.Vec3{5 / math.Sqrt2, 0, 0},
			pitch: 45,
		},
		{name: "vertical", dir: mgl64.Vec3{0, 0, 2}, left: mgl64.Vec3{0, 0, 0}, right: mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, ok := CalculateSideTracks(mgl64.Vec3{}, tt.dir, 10)
			require.True(t, ok)

			if diff := cmp.Diff(tt.left, side.Left, approx); diff != "" {
				t.Errorf("Left mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.right, side.Right, approx); diff != "" {
				t.Errorf("Right mismatch (-want +got):\n%s", diff)
			}
			assert.InDelta(t, tt.yaw, side.Angles.Yaw, 1e-9)
			assert.InDelta(t, tt.pitch, side.Angles.Pitch, 1e-9)
		})
	}
}

func TestCalculateSideTracksZeroDirection(t *testing.T) {
	assert.NotPanics(t, func() {
		_, ok := CalculateSideTracks(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}, 10)
		assert.False(t, ok)
	})
}

func TestComputeBoundariesSquare(t *testing.T) {
	points := square(10)

	left, right := ComputeBoundaries(points, 4)
	require.Len(t, left, 4)
	require.Len(t, right, 4)

	// Corners are mitered: the outer boundary meets at the offset square's
	// corners instead of being rounded or butted.
	wantLeft := []mgl64.Vec3{{-2, -2, 0}, {12, -2, 0}, {12, 12, 0}, {-2, 12, 0}}
	wantRight := []mgl64.Vec3{{2, 2, 0}, {8, 2, 0}, {8, 8, 0}, {2, 8, 0}}

	for i := range points {
		if diff := cmp.Diff(wantLeft[i], left[i].Pos, approx); diff != "" {
			t.Errorf("left[%d] mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(wantRight[i], right[i].Pos, approx); diff != "" {
			t.Errorf("right[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestComputeBoundariesOffsetAtMidpoints(t *testing.T) {
	points := square(40)
	spacing := 10.0

	left, right := ComputeBoundaries(points, spacing)

	n := len(points)
	for i := range points {
		a, b := points[i], points[(i+1)%n]

		for _, side := range [][]BoundaryPoint{left, right} {
			mid := side[i].Pos.Add(side[(i+1)%n].Pos).Mul(0.5)
			assert.InDelta(t, spacing/2, distanceToLine(mid, a, b), 1e-9, "segment %d", i)
		}
	}
}

func TestComputeBoundariesStraightEndpoint(t *testing.T) {
	// The first waypoint sits in the middle of a straight, so its offset lines
	// are parallel. The boundary passes straight through it.
	points := []mgl64.Vec3{{5, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0}, {0, 0, 0}}

	left, right := ComputeBoundaries(points, 2)

	assert.InDelta(t, -1, left[0].Pos[1], 1e-9)
	assert.InDelta(t, 5, left[0].Pos[0], 1e-9)
	assert.InDelta(t, 1, right[0].Pos[1], 1e-9)
}

func TestComputeBoundariesDuplicatePoints(t *testing.T) {
	points := []mgl64.Vec3{{0, 0, 0}, {0, 0, 0}, {10, 0, 0}, {10, 10, 0}}

	assert.NotPanics(t, func() {
		left, right := ComputeBoundaries(points, 4)
		assert.Len(t, left, 4)
		assert.Len(t, right, 4)
	})
}

func TestTileSegmentCount(t *testing.T) {
	tests := []struct {
		length float64
		want   int
	}{
		{length: 2, want: 1},
		{length: 5, want: 3},
		{length: 6, want: 3},
		{length: 6.5, want: 4},
		{length: 0.1, want: 1},
	}

	for _, tt := range tests {
		spawner := &recordingSpawner{}
		g := NewGenerator(testDimensions(), spawner)
		track := &Track{spawner: spawner}
		angles := Angles{Yaw: 30, Pitch: 5}

		start := mgl64.Vec3{1, 1, 0}
		end := start.Add(mgl64.Vec3{tt.length, 0, 0})

		got := g.TileSegment(track, start, end, angles)
		assert.Equal(t, tt.want, got, "length %v", tt.length)

		walls := spawner.byKind(KindWall)
		floors := spawner.byKind(KindFloor)
		require.Len(t, walls, tt.want)
		require.Len(t, floors, tt.want)

		for i, w := range walls {
			assert.Equal(t, angles, w.Angles)
			assert.Equal(t, angles, floors[i].Angles)
			assert.Equal(t, w.Pos, floors[i].Pos)
			if diff := cmp.Diff(mgl64.Vec3{1 + 2*float64(i), 1, 0}, w.Pos, approx); diff != "" {
				t.Errorf("wall %d position mismatch (-want +got):\n%s", i, diff)
			}
		}
	}
}

func TestTileSegmentOvershoots(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)

	g.TileSegment(&Track{spawner: spawner}, mgl64.Vec3{}, mgl64.Vec3{5, 0, 0}, Angles{})

	walls := spawner.byKind(KindWall)
	last := walls[len(walls)-1]
	// The final wall starts at 4 and is 2 long, reaching past the end at 5
	assert.InDelta(t, 4, last.Pos[0], 1e-9)
}

func TestTileSegmentZeroLength(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)
	p := mgl64.Vec3{3, 4, 5}

	assert.Equal(t, 0, g.TileSegment(&Track{spawner: spawner}, p, p, Angles{}))
	assert.Empty(t, spawner.placements)
}

func TestNewGeneratorWallSpacing(t *testing.T) {
	g := NewGenerator(testDimensions(), &recordingSpawner{})

	// max(1, 2, 1.5) + 1.6 * 5
	assert.InDelta(t, 10, g.WallSpacing, 1e-9)
	assert.Equal(t, 0.5, g.PowerupChance)
}

func TestGenerateSquare(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)

	track, err := g.Generate(square(40), noPowerups{})
	require.NoError(t, err)

	// Outer boundary is 50 long per side, inner 30, walls are 2 long
	assert.Len(t, track.Walls, 4*(25+15))
	assert.Len(t, track.Floors, 4*(25+15))
	assert.Len(t, track.Checkpoints, 4)
	assert.Empty(t, track.Powerups)

	require.Len(t, spawner.checkpoints, 4)
	for i, c := range spawner.checkpoints {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, 2.0, c.Capsule.Radius)
		assert.Equal(t, track.Left[i].Pos, c.Capsule.A)
		assert.Equal(t, track.Right[i].Pos, c.Capsule.B)
		assert.InDelta(t, g.WallSpacing*math.Sqrt2, c.Capsule.A.Sub(c.Capsule.B).Len(), 1e-9)
	}
}

func TestGenerateCollapsedInnerBoundary(t *testing.T) {
	// A 10x10 square with a 10 wide track pinches the inner boundary to a
	// single point; its zero-length segments place nothing.
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)

	track, err := g.Generate(square(10), noPowerups{})
	require.NoError(t, err)

	for _, r := range track.Right {
		if diff := cmp.Diff(mgl64.Vec3{5, 5, 0}, r.Pos, approx); diff != "" {
			t.Errorf("inner vertex mismatch (-want +got):\n%s", diff)
		}
	}
	assert.Len(t, track.Walls, 4*10)
}

func TestGenerateNotEnoughPoints(t *testing.T) {
	g := NewGenerator(testDimensions(), &recordingSpawner{})

	_, err := g.Generate(square(10)[:3], noPowerups{})
	assert.ErrorIs(t, err, trackdata.ErrNotEnoughPoints)
}

func TestGeneratePowerupsScripted(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)
	track := &Track{Points: square(10), spawner: spawner}

	rng := &scriptedRand{values: []float64{
		0.3, 0.5, // spawn halfway along segment 0
		0.7,      // skip segment 1
		0.5, 0.0, // a draw equal to the chance still spawns, at 10% of segment 2
		0.6,      // skip segment 3
	}}

	g.GeneratePowerups(track, rng)

	want := []mgl64.Vec3{{5, 0, 0}, {9, 10, 0}}
	if diff := cmp.Diff(want, track.PowerupPositions, approx); diff != "" {
		t.Errorf("powerup positions mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, spawner.byKind(KindPowerup), 2)
	assert.Equal(t, len(rng.values), rng.i)
}

func TestGeneratePowerupsSeeded(t *testing.T) {
	run := func() []mgl64.Vec3 {
		spawner := &recordingSpawner{}
		g := NewGenerator(testDimensions(), spawner)
		track, err := g.Generate(square(40), rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		return track.PowerupPositions
	}

	first := run()
	assert.Equal(t, first, run())

	points := square(40)
	for _, p := range first {
		// Every powerup lies on the centerline, away from the corners
		onEdge := p[0] == 0 || p[0] == 40 || p[1] == 0 || p[1] == 40
		assert.True(t, onEdge, "powerup %v off the centerline", p)
		for _, corner := range points {
			assert.Greater(t, p.Sub(corner).Len(), 0.1*40-1e-9)
		}
	}
}

func TestTrackDestroy(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)

	track, err := g.Generate(square(40), &scriptedRand{values: []float64{0, 0.5, 1, 1, 1}})
	require.NoError(t, err)

	owned := track.Handles()
	assert.Equal(t, len(spawner.placements)+len(spawner.checkpoints), owned)

	track.Destroy()
	assert.Equal(t, owned, spawner.destroyed)
	assert.Zero(t, track.Handles())

	track.Destroy()
	assert.Equal(t, owned, spawner.destroyed)
}

func TestLayoutSpawnsNothing(t *testing.T) {
	spawner := &recordingSpawner{}
	g := NewGenerator(testDimensions(), spawner)

	tr, err := g.Layout(square(40))
	require.NoError(t, err)
	assert.Len(t, tr.Left, 4)
	assert.Empty(t, spawner.placements)
	assert.Empty(t, spawner.checkpoints)

	lo, hi := tr.Bounds()
	assert.InDeltaSlice(t, []float64{-5, -5, 0}, lo[:], 1e-9)
	assert.InDeltaSlice(t, []float64{45, 45, 0}, hi[:], 1e-9)

	g.Populate(tr, noPowerups{})
	assert.Len(t, spawner.byKind(KindWall), 160)
	assert.Len(t, spawner.checkpoints, 4)
}

func TestBoundsEmptyTrack(t *testing.T) {
	lo, hi := (&Track{}).Bounds()
	assert.Equal(t, mgl64.Vec3{}, lo)
	assert.Equal(t, mgl64.Vec3{}, hi)
}
