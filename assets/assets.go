package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	//go:embed all:racetracks
	trackFS embed.FS
)

// Descriptor is the bounding information of a model, as the host engine
// reports it after loading and scaling.
type Descriptor struct {
	Name   string
	Dim    mgl64.Vec3 // Bounding box size (x, y, z)
	Offset mgl64.Vec3 // Bounding box centre relative to the model origin
}

// Width is the x extent of the bounding box.
func (d Descriptor) Width() float64 { return d.Dim[0] }

// Length is the y extent of the bounding box.
func (d Descriptor) Length() float64 { return d.Dim[1] }

// Height is the z extent of the bounding box.
func (d Descriptor) Height() float64 { return d.Dim[2] }

var descriptors = map[string]Descriptor{
	// Crate model is authored at 100x scale and shrunk on load
	"concrete_crate": {
		Name:   "concrete_crate",
		Dim:    mgl64.Vec3{1, 2, 1.5},
		Offset: mgl64.Vec3{0, 0, 0.75},
	},
	"ground": {
		Name:   "ground",
		Dim:    mgl64.Vec3{2, 2, 0.1},
		Offset: mgl64.Vec3{0, 0, 0.05},
	},
	"groundroamer": {
		Name:   "groundroamer",
		Dim:    mgl64.Vec3{1.6, 3.2, 1.1},
		Offset: mgl64.Vec3{0, 0, 0.55},
	},
	"powerup": {
		Name:   "powerup",
		Dim:    mgl64.Vec3{1, 1, 1},
		Offset: mgl64.Vec3{0, 0, 0.5},
	},
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (Descriptor, error) {
	d, ok := descriptors[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown asset %q", name)
	}
	return d, nil
}

// Register adds or replaces a descriptor, for hosts that load their own models.
func Register(d Descriptor) {
	descriptors[d.Name] = d
}

// TrackFS exposes the racetracks shipped with the binary. Paths are relative
// to the racetracks directory.
func TrackFS() fs.FS {
	sub, err := fs.Sub(trackFS, "racetracks")
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded racetracks: %v", err))
	}
	return sub
}
