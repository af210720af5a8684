package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData places a model in world space. Angles are in degrees.
type TransformData struct {
	Pos   mgl64.Vec3
	Yaw   float64
	Pitch float64
}

var Transform = donburi.NewComponentType[TransformData]()
