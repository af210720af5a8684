package factory

import (
	"github.com/automoto/racetrack/archetypes"
	"github.com/automoto/racetrack/assets"
	"github.com/automoto/racetrack/collision"
	"github.com/automoto/racetrack/components"
	cfg "github.com/automoto/racetrack/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePowerup(ecs *ecs.ECS, model assets.Descriptor, pos mgl64.Vec3) *donburi.Entry {
	powerup := archetypes.Powerup.Spawn(ecs)

	// Powerups bob up and down above their resting point.
	hover := gween.NewSequence()
	hover.Add(
		gween.New(0, float32(cfg.Powerup.HoverHeight), cfg.Powerup.HoverDuration, ease.InOutSine),
		gween.New(float32(cfg.Powerup.HoverHeight), 0, cfg.Powerup.HoverDuration, ease.InOutSine),
	)

	components.Powerup.SetValue(powerup, components.PowerupData{
		Base:  pos,
		Hover: hover,
	})
	components.Transform.SetValue(powerup, components.TransformData{Pos: pos})

	newObject(ecs, powerup, pos, model.Width(), model.Length(), collision.Powerup)

	return powerup
}
