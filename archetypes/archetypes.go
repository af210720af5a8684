package archetypes

import (
	"github.com/automoto/racetrack/components"
	cfg "github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
		components.Transform,
	)
	Racetrack = newArchetype(
		components.Racetrack,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Transform,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
		components.Transform,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Powerup = newArchetype(
		tags.Powerup,
		components.Powerup,
		components.Object,
		components.Transform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
