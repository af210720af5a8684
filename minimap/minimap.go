// Package minimap renders a top-down overview of a generated racetrack.
package minimap

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	cfg "github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/trackgen"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
)

var (
	Background = color.RGBA{R: 0x20, G: 0x24, B: 0x20, A: 0xff}
	Surface    = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	Centerline = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Checkpoint = color.RGBA{R: 0xf0, G: 0xc0, B: 0x20, A: 0xff}
	Powerup    = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
)

// projection maps the ground plane onto image pixels, y pointing down.
type projection struct {
	min    mgl64.Vec3
	scale  float64
	offset mgl64.Vec2
	height float64
}

func newProjection(t *trackgen.Track, size int, padding float64) projection {
	lo, hi := t.Bounds()
	w, h := hi.X()-lo.X(), hi.Y()-lo.Y()

	avail := float64(size) - 2*padding
	scale := avail / math.Max(math.Max(w, h), 1)

	return projection{
		min:   lo,
		scale: scale,
		// Centre the shorter axis
		offset: mgl64.Vec2{padding + (avail-w*scale)/2, padding + (avail-h*scale)/2},
		height: float64(size),
	}
}

func (p projection) point(v mgl64.Vec3) (float32, float32) {
	x := p.offset.X() + (v.X()-p.min.X())*p.scale
	y := p.offset.Y() + (v.Y()-p.min.Y())*p.scale
	return float32(x), float32(p.height - y)
}

// Render draws t into a size by size image using the configured padding.
func Render(t *trackgen.Track, size int) *image.RGBA {
	return RenderPadded(t, size, cfg.Minimap.Padding)
}

// RenderPadded draws the track surface between both boundaries, the
// checkpoints, the centerline and the powerups.
func RenderPadded(t *trackgen.Track, size int, padding float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if len(t.Points) == 0 {
		return img
	}

	p := newProjection(t, size, padding)

	fillSurface(img, p, t)
	for i := range t.Left {
		strokeLine(img, p, t.Left[i].Pos, t.Right[i].Pos, 1, Checkpoint)
	}
	for i := range t.Points {
		strokeLine(img, p, t.Points[i], t.Points[(i+1)%len(t.Points)], 1.5, Centerline)
	}
	for _, pos := range t.PowerupPositions {
		fillSquare(img, p, pos, 3, Powerup)
	}

	return img
}

// fillSurface fills the ring between the two boundaries. The right boundary is
// traced backwards so it cancels out of the left one.
func fillSurface(img *image.RGBA, p projection, t *trackgen.Track) {
	if len(t.Left) < 3 {
		return
	}

	r := newRasterizer(img)
	tracePolygon(r, p, t.Left, false)
	tracePolygon(r, p, t.Right, true)
	r.Draw(img, img.Bounds(), image.NewUniform(Surface), image.Point{})
}

func tracePolygon(r *vector.Rasterizer, p projection, pts []trackgen.BoundaryPoint, reverse bool) {
	at := func(i int) mgl64.Vec3 {
		if reverse {
			return pts[len(pts)-1-i].Pos
		}
		return pts[i].Pos
	}

	r.MoveTo(p.point(at(0)))
	for i := 1; i < len(pts); i++ {
		r.LineTo(p.point(at(i)))
	}
	r.ClosePath()
}

func strokeLine(img *image.RGBA, p projection, a, b mgl64.Vec3, width float32, c color.Color) {
	ax, ay := p.point(a)
	bx, by := p.point(b)

	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	r := newRasterizer(img)
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func fillSquare(img *image.RGBA, p projection, center mgl64.Vec3, half float32, c color.Color) {
	x, y := p.point(center)

	r := newRasterizer(img)
	r.MoveTo(x-half, y-half)
	r.LineTo(x+half, y-half)
	r.LineTo(x+half, y+half)
	r.LineTo(x-half, y+half)
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func newRasterizer(img *image.RGBA) *vector.Rasterizer {
	b := img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	return r
}
