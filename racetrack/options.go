package racetrack

import (
	"io/fs"

	"github.com/automoto/racetrack/assets"
	"github.com/automoto/racetrack/shared/trackdata"
	"github.com/automoto/racetrack/trackgen"
)

type options struct {
	loader  *trackdata.Loader
	rng     trackgen.Rand
	seed    int64
	seeded  bool
	wall    string
	floor   string
	car     string
	powerup string
}

// Option customises how New loads and builds a racetrack.
type Option func(*options)

// WithLoader replaces the default loader over the configured track directory.
func WithLoader(l *trackdata.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithFS loads tracks from fsys, falling back to the embedded tracks.
func WithFS(fsys fs.FS) Option {
	return func(o *options) { o.loader = trackdata.NewLoader(fsys, assets.TrackFS()) }
}

// WithSeed fixes the powerup seed instead of reusing the saved one.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand supplies the powerup random source directly. The seed is neither
// loaded nor saved.
func WithRand(rng trackgen.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithAssets overrides the model descriptors looked up for walls, floors, the
// reference car and powerups. Empty names keep the configured default.
func WithAssets(wall, floor, car, powerup string) Option {
	return func(o *options) {
		if wall != "" {
			o.wall = wall
		}
		if floor != "" {
			o.floor = floor
		}
		if car != "" {
			o.car = car
		}
		if powerup != "" {
			o.powerup = powerup
		}
	}
}
