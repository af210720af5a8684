package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PowerupData struct {
	Base  mgl64.Vec3 // Resting position on the centerline
	Hover *gween.Sequence
}

var Powerup = donburi.NewComponentType[PowerupData]()
