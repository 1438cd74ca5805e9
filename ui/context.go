// Package ui implements the data-driven interface engine: it loads a
// declarative node tree into named layout points and drawable elements, and
// each frame resolves every element's visibility, activation state, geometry
// and appearance against the runtime context before issuing draw calls.
//
// The engine computes what rectangle, color and state to draw; the actual
// drawing primitives, screen metrics and pointer position come from an
// injected Driver (see ui/raylib for the raylib implementation). Runtime
// values come from an Information provider, and named sprites and palette
// colors from an Assets registry. None of these are owned or mutated here.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/geom"
)

// Visual states an element can resolve to at draw time. Hover is only
// reachable from the active state.
const (
	StateInactive = iota
	StateActive
	StateHover
	stateCount
)

// Sprite is a non-owning reference to a drawable texture in a shared asset
// registry. A zero-size sprite is a placeholder that has not been loaded yet;
// drawing code treats it as "nothing to draw".
type Sprite struct {
	Name    string
	Texture rl.Texture2D

	// Frames is the number of animation frames stacked vertically in the
	// texture; zero or one means a static sprite.
	Frames int
}

// Width returns the pixel width of one frame.
func (s *Sprite) Width() float64 {
	return float64(s.Texture.Width)
}

// Height returns the pixel height of one frame.
func (s *Sprite) Height() float64 {
	frames := s.Frames
	if frames < 1 {
		frames = 1
	}
	return float64(s.Texture.Height) / float64(frames)
}

// Assets resolves named sprites and palette colors at load time. Returned
// pointers are shared, non-owning references: the registry may fill them in
// after the interface has captured them. Implementations must return a valid
// (possibly empty) object for unknown names rather than fail.
type Assets interface {
	Sprite(name string) *Sprite
	Color(name string) *rl.Color
}

// Information supplies the live values elements resolve against every frame:
// condition booleans, dynamic strings and sprites, per-sprite animation
// state, and bar values. The engine never mutates it.
type Information interface {
	// HasCondition reports whether the named condition is set. An empty
	// name always reports true.
	HasCondition(name string) bool
	GetString(key string) string
	GetSprite(name string) *Sprite
	SpriteUnit(name string) geom.Point
	SpriteFrame(name string) int
	OutlineColor() rl.Color
	BarValue(name string) float64
	BarSegments(name string) float64
}

// Driver supplies screen metrics, the pointer position, text measurement and
// the low-level draw primitives. Backend packages implement it; tests use
// recording fakes.
type Driver interface {
	ScreenDimensions() geom.Point
	MousePosition() geom.Point

	// TextSize measures the rendered extent of text at the given font size.
	TextSize(text string, size int) geom.Point

	// DrawSprite blits a sprite centered at center, uniformly scaled.
	DrawSprite(sprite *Sprite, center geom.Point, scale float64)
	// DrawOutline renders a sprite silhouette stretched to dimensions,
	// using the given animation unit vector and frame index.
	DrawOutline(sprite *Sprite, center, dimensions geom.Point, col rl.Color, unit geom.Point, frame int)
	DrawLine(from, to geom.Point, width float64, col rl.Color)
	// DrawRing strokes a circular arc of the given radius and stroke width
	// covering fraction of the full circle, optionally split into segments.
	DrawRing(center geom.Point, radius, width, fraction float64, col rl.Color, segments float64)
	DrawText(text string, size int, topLeft geom.Point, col rl.Color)
}

// ClickHost is the clickable-zone registry a panel passes into Draw. Button
// elements register their screen rectangle and trigger key with it.
type ClickHost interface {
	AddZone(box geom.Rect, key rune)
}
