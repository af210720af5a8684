package factory

import (
	"github.com/automoto/racetrack/assets"
	"github.com/automoto/racetrack/log"
	"github.com/automoto/racetrack/trackgen"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Spawner creates track objects as entities. Handles it returns are
// *donburi.Entry.
type Spawner struct {
	ecs *ecs.ECS

	Wall    assets.Descriptor
	Floor   assets.Descriptor
	Powerup assets.Descriptor
}

func NewSpawner(ecs *ecs.ECS, wall, floor, powerup assets.Descriptor) *Spawner {
	return &Spawner{
		ecs:     ecs,
		Wall:    wall,
		Floor:   floor,
		Powerup: powerup,
	}
}

func (s *Spawner) Spawn(kind trackgen.Kind, pos mgl64.Vec3, angles trackgen.Angles) trackgen.Handle {
	switch kind {
	case trackgen.KindWall:
		return CreateWall(s.ecs, s.Wall, pos, angles)
	case trackgen.KindFloor:
		return CreateFloor(s.ecs, s.Floor, pos, angles)
	case trackgen.KindPowerup:
		return CreatePowerup(s.ecs, s.Powerup, pos)
	}

	log.Logger.Warn("unknown track object kind", zap.Stringer("kind", kind))
	return nil
}

func (s *Spawner) SpawnCheckpoint(c trackgen.Capsule, index int) trackgen.Handle {
	return CreateCheckpoint(s.ecs, c, index)
}

func (s *Spawner) Destroy(h trackgen.Handle) {
	entry, ok := h.(*donburi.Entry)
	if !ok {
		return
	}
	Destroy(s.ecs, entry)
}
