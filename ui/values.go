package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/geom"
)

// Values is the standard Information implementation: a bag of named runtime
// values the host fills in before each Draw. The zero value is ready to use.
type Values struct {
	conditions   map[string]bool
	strings      map[string]string
	sprites      map[string]*Sprite
	spriteUnits  map[string]geom.Point
	spriteFrames map[string]int
	barValues    map[string]float64
	barSegments  map[string]float64
	outlineColor rl.Color
}

// SetCondition sets or clears a named condition.
func (v *Values) SetCondition(name string, value bool) {
	if v.conditions == nil {
		v.conditions = make(map[string]bool)
	}
	v.conditions[name] = value
}

// SetString sets the text a `string <key>` element resolves to.
func (v *Values) SetString(key, text string) {
	if v.strings == nil {
		v.strings = make(map[string]string)
	}
	v.strings[key] = text
}

// SetSprite sets the sprite an `image <name>` or `outline <name>` element
// resolves to, along with its animation unit vector and frame index.
func (v *Values) SetSprite(name string, sprite *Sprite, unit geom.Point, frame int) {
	if v.sprites == nil {
		v.sprites = make(map[string]*Sprite)
		v.spriteUnits = make(map[string]geom.Point)
		v.spriteFrames = make(map[string]int)
	}
	v.sprites[name] = sprite
	v.spriteUnits[name] = unit
	v.spriteFrames[name] = frame
}

// SetBar sets the fill fraction and segment count a bar or ring reads.
func (v *Values) SetBar(name string, value, segments float64) {
	if v.barValues == nil {
		v.barValues = make(map[string]float64)
		v.barSegments = make(map[string]float64)
	}
	v.barValues[name] = value
	v.barSegments[name] = segments
}

// SetOutlineColor sets the color `colored` outline elements draw with.
func (v *Values) SetOutlineColor(col rl.Color) {
	v.outlineColor = col
}

func (v *Values) HasCondition(name string) bool {
	if name == "" {
		return true
	}
	return v.conditions[name]
}

func (v *Values) GetString(key string) string {
	return v.strings[key]
}

func (v *Values) GetSprite(name string) *Sprite {
	return v.sprites[name]
}

func (v *Values) SpriteUnit(name string) geom.Point {
	return v.spriteUnits[name]
}

func (v *Values) SpriteFrame(name string) int {
	return v.spriteFrames[name]
}

func (v *Values) OutlineColor() rl.Color {
	return v.outlineColor
}

func (v *Values) BarValue(name string) float64 {
	return v.barValues[name]
}

func (v *Values) BarSegments(name string) float64 {
	return v.barSegments[name]
}
