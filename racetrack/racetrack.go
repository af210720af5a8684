// Package racetrack builds a playable racetrack inside a donburi world: it
// loads the centerline, lays out both boundaries and spawns walls, floors,
// checkpoints and powerups as entities with collision objects.
package racetrack

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/racetrack/archetypes"
	"github.com/automoto/racetrack/assets"
	"github.com/automoto/racetrack/components"
	cfg "github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/log"
	"github.com/automoto/racetrack/shared/trackdata"
	"github.com/automoto/racetrack/systems"
	"github.com/automoto/racetrack/systems/factory"
	"github.com/automoto/racetrack/trackgen"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Racetrack is a track spawned into an ECS world. It owns its entities until
// Destroy is called.
type Racetrack struct {
	Name  string
	Data  *trackdata.TrackData
	Track *trackgen.Track
	Seed  int64

	ecs   *ecs.ECS
	entry *donburi.Entry
	space *donburi.Entry
}

// Summary counts what a racetrack is made of.
type Summary struct {
	Name        string
	File        string
	Fallback    bool
	Seed        int64
	Points      int
	Walls       int
	Floors      int
	Checkpoints int
	Powerups    int
}

// New loads the named track and spawns it into e. A missing track falls back
// to the default one; a malformed or degenerate track is an error and leaves
// the world untouched.
func New(e *ecs.ECS, name string, opts ...Option) (*Racetrack, error) {
	o := &options{
		wall:    cfg.Track.WallAsset,
		floor:   cfg.Track.FloorAsset,
		car:     cfg.Track.CarAsset,
		powerup: cfg.Track.PowerupAsset,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.loader == nil {
		o.loader = trackdata.NewLoader(os.DirFS(cfg.Track.Dir), assets.TrackFS())
	}

	data, err := o.loader.Load(name)
	if err != nil {
		return nil, fmt.Errorf("load racetrack %s: %w", name, err)
	}

	models := make(map[string]assets.Descriptor, 4)
	for _, n := range []string{o.wall, o.floor, o.car, o.powerup} {
		d, err := assets.Lookup(n)
		if err != nil {
			return nil, fmt.Errorf("load racetrack %s: %w", name, err)
		}
		models[n] = d
	}

	spawner := factory.NewSpawner(e, models[o.wall], models[o.floor], models[o.powerup])
	gen := trackgen.NewGenerator(trackgen.NewDimensions(models[o.wall], models[o.car]), spawner)

	t, err := gen.Layout(data.Points)
	if err != nil {
		return nil, fmt.Errorf("load racetrack %s: %w", name, err)
	}

	rt := &Racetrack{
		Name:  name,
		Data:  data,
		Track: t,
		ecs:   e,
	}

	rng := o.rng
	if rng == nil {
		rt.Seed = resolveSeed(name, o)
		rng = rand.New(rand.NewSource(rt.Seed))
	}

	lo, hi := t.Bounds()
	rt.space = factory.CreateSpace(e, lo, hi)
	gen.Populate(t, rng)

	rt.entry = archetypes.Racetrack.Spawn(e)
	components.Racetrack.Set(rt.entry, &components.RacetrackData{
		Data:   data,
		Track:  t,
		Origin: factory.SpaceOrigin(e.World),
		Seed:   rt.Seed,
	})

	if o.rng == nil {
		if err := systems.SaveSeed(name, rt.Seed); err != nil {
			// The track is usable without a remembered seed
			log.Logger.Warn("Racetrack seed not saved", zap.String("track", name), zap.Error(err))
		}
	}

	s := rt.Summary()
	log.Logger.Info("Racetrack loaded",
		zap.String("track", s.Name),
		zap.String("file", s.File),
		zap.Bool("fallback", s.Fallback),
		zap.Int64("seed", s.Seed),
		zap.Int("points", s.Points),
		zap.Int("walls", s.Walls),
		zap.Int("floors", s.Floors),
		zap.Int("checkpoints", s.Checkpoints),
		zap.Int("powerups", s.Powerups))

	return rt, nil
}

func resolveSeed(name string, o *options) int64 {
	if o.seeded {
		return o.seed
	}
	if seed, ok := systems.LoadSeed(name); ok {
		return seed
	}
	return time.Now().UnixNano()
}

// Summary reports the current object counts.
func (r *Racetrack) Summary() Summary {
	return Summary{
		Name:        r.Name,
		File:        r.Data.File,
		Fallback:    r.Data.Fallback,
		Seed:        r.Seed,
		Points:      len(r.Track.Points),
		Walls:       len(r.Track.Walls),
		Floors:      len(r.Track.Floors),
		Checkpoints: len(r.Track.Checkpoints),
		Powerups:    len(r.Track.Powerups),
	}
}

// Space returns the collision space the track objects live in.
func (r *Racetrack) Space() *resolv.Space {
	if r.space == nil || !r.space.Valid() {
		return nil
	}
	return components.Space.Get(r.space)
}

// Destroy removes every entity and collision object the track created. It is
// safe to call more than once.
func (r *Racetrack) Destroy() {
	if r.Track != nil {
		r.Track.Destroy()
	}
	if r.entry != nil && r.entry.Valid() {
		r.ecs.World.Remove(r.entry.Entity())
	}
	if r.space != nil && r.space.Valid() {
		r.ecs.World.Remove(r.space.Entity())
	}
	r.entry, r.space = nil, nil
}

// CheckpointAt resolves a collision object to the index of the checkpoint it
// belongs to.
func CheckpointAt(obj *resolv.Object) (int, bool) {
	return systems.CheckpointIndex(obj)
}
