package trackdata

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
	"github.com/samber/lo"
)

// CenterlineGroup is the Tiled object group holding the track centerline.
const CenterlineGroup = "Centerline"

// LoadTMX reads a centerline drawn in Tiled. The first polygon or polyline
// object in the Centerline object group is used; its optional float property
// "z" sets the height of every point.
func LoadTMX(fsys fs.FS, tmxPath string) ([]mgl64.Vec3, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != CenterlineGroup {
			continue
		}
		for _, o := range og.Objects {
			var pts *tiled.Points
			switch {
			case len(o.Polygons) > 0:
				pts = o.Polygons[0].Points
			case len(o.PolyLines) > 0:
				pts = o.PolyLines[0].Points
			}
			if pts == nil || len(*pts) == 0 {
				continue
			}

			// Polygon points are relative to the object position
			z := o.Properties.GetFloat("z")
			return lo.Map(*pts, func(p *tiled.Point, _ int) mgl64.Vec3 {
				return mgl64.Vec3{o.X + p.X, o.Y + p.Y, z}
			}), nil
		}
	}

	return nil, fmt.Errorf("%s: no polygon in object group %q: %w", tmxPath, CenterlineGroup, ErrNotEnoughPoints)
}
