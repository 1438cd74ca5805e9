// Package raylib implements the engine's Driver and Assets capabilities on
// top of raylib: textures for sprites, vector primitives for bars and rings,
// and font rendering by size bucket.
package raylib

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/geom"
	"facet/ui"
)

// Driver renders through raylib. Engine coordinates have their origin at the
// screen center; the driver translates to raylib's top-left pixel space on
// every call. It is only valid between rl.InitWindow and rl.CloseWindow, and
// must be used from the render thread.
type Driver struct {
	Fonts FontSet
}

// NewDriver returns a driver rendering with the default raylib font. Call
// Fonts.Load to add size-bucketed fonts.
func NewDriver() *Driver {
	return &Driver{}
}

func vec(p geom.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// pixel converts a center-origin engine point to raylib pixel space.
func (d *Driver) pixel(p geom.Point) rl.Vector2 {
	return vec(p.Add(d.ScreenDimensions().Scale(.5)))
}

func (d *Driver) ScreenDimensions() geom.Point {
	return geom.Pt(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
}

func (d *Driver) MousePosition() geom.Point {
	pos := rl.GetMousePosition()
	return geom.Pt(float64(pos.X), float64(pos.Y)).Sub(d.ScreenDimensions().Scale(.5))
}

func (d *Driver) TextSize(text string, size int) geom.Point {
	font := d.Fonts.Get(size)
	measured := rl.MeasureTextEx(font, text, float32(size), spacing(size))
	return geom.Pt(float64(measured.X), float64(measured.Y))
}

func (d *Driver) DrawText(text string, size int, topLeft geom.Point, col rl.Color) {
	font := d.Fonts.Get(size)
	rl.DrawTextEx(font, text, d.pixel(topLeft), float32(size), spacing(size), col)
}

// frameRect returns the source rectangle of one animation frame. Frames are
// stacked vertically in the texture.
func frameRect(sprite *ui.Sprite, frame int) rl.Rectangle {
	h := float32(sprite.Height())
	frames := sprite.Frames
	if frames < 1 {
		frames = 1
	}
	frame = ((frame % frames) + frames) % frames
	return rl.NewRectangle(0, float32(frame)*h, float32(sprite.Width()), h)
}

func (d *Driver) DrawSprite(sprite *ui.Sprite, center geom.Point, scale float64) {
	w := sprite.Width() * scale
	h := sprite.Height() * scale
	at := d.pixel(center)
	dest := rl.NewRectangle(at.X, at.Y, float32(w), float32(h))
	origin := rl.NewVector2(float32(.5*w), float32(.5*h))
	rl.DrawTexturePro(sprite.Texture, frameRect(sprite, 0), dest, origin, 0, rl.White)
}

func (d *Driver) DrawOutline(sprite *ui.Sprite, center, dimensions geom.Point, col rl.Color, unit geom.Point, frame int) {
	at := d.pixel(center)
	dest := rl.NewRectangle(at.X, at.Y, float32(dimensions.X), float32(dimensions.Y))
	origin := rl.NewVector2(float32(.5*dimensions.X), float32(.5*dimensions.Y))

	// The unit vector gives the sprite's facing; (0,-1) is unrotated.
	rotation := float32(0)
	if !unit.IsZero() {
		rotation = float32(math.Atan2(unit.X, -unit.Y) * 180 / math.Pi)
	}
	rl.DrawTexturePro(sprite.Texture, frameRect(sprite, frame), dest, origin, rotation, col)
}

func (d *Driver) DrawLine(from, to geom.Point, width float64, col rl.Color) {
	rl.DrawLineEx(d.pixel(from), d.pixel(to), float32(width), col)
}

func (d *Driver) DrawRing(center geom.Point, radius, width, fraction float64, col rl.Color, segments float64) {
	inner := float32(radius - .5*width)
	outer := float32(radius + .5*width)
	if inner < 0 {
		inner = 0
	}

	// The arc starts at the top of the circle and sweeps clockwise. raylib
	// measures angles in degrees from the positive x axis.
	const start = -90.

	if segments <= 1 {
		rl.DrawRing(d.pixel(center), inner, outer, start, float32(start+360*fraction), arcSteps(fraction), col)
		return
	}

	// Split the sweep into dashes separated by gaps the size of the stroke
	// width, clipping the last dash to the target fraction.
	empty := width / (2 * math.Pi * radius)
	filled := (1 - empty*(segments-1)) / segments
	for v := 0.; v < fraction; {
		from := v
		v += filled
		to := math.Min(v, fraction)
		v += empty

		rl.DrawRing(d.pixel(center), inner, outer, float32(start+360*from), float32(start+360*to), arcSteps(to-from), col)
	}
}

// arcSteps picks a tessellation step count proportional to the arc's sweep.
func arcSteps(fraction float64) int32 {
	steps := int32(math.Ceil(72 * fraction))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// spacing mirrors raylib's default letter spacing for a font size.
func spacing(size int) float32 {
	return float32(size) / 10
}
