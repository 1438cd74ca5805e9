package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/datanode"
	"facet/geom"
)

// outlineWhite tints uncolored outline renders.
var outlineWhite = rl.NewColor(255, 255, 255, 191)

// imageElement draws either a static sprite with per-state variants (the
// "sprite" form) or a sprite resolved by name from the runtime context every
// frame (the "image" and "outline" forms).
type imageElement struct {
	elementBase

	// name is the dynamic sprite key; it is empty for static sprites.
	name      string
	sprite    [stateCount]*Sprite
	isOutline bool
	isColored bool
}

func newImageElement(node *datanode.Node, global geom.Point, assets Assets) *imageElement {
	e := &imageElement{}
	if node.Size() < 2 {
		return e
	}

	e.isOutline = node.Token(0) == "outline"
	if node.Token(0) == "sprite" {
		e.sprite[StateActive] = assets.Sprite(node.Token(1))
	} else {
		e.name = node.Token(1)
	}

	loadElement(e, node, global, assets)

	// Any state sprite left unset falls back to the active one.
	if e.sprite[StateActive] != nil {
		if e.sprite[StateInactive] == nil {
			e.sprite[StateInactive] = e.sprite[StateActive]
		}
		if e.sprite[StateHover] == nil {
			e.sprite[StateHover] = e.sprite[StateActive]
		}
	}
	return e
}

func (e *imageElement) parseLine(node *datanode.Node, assets Assets) bool {
	// Per-state sprites only apply to the static form, and "colored" only to
	// outlines.
	switch {
	case node.Token(0) == "inactive" && node.Size() >= 2 && e.name == "":
		e.sprite[StateInactive] = assets.Sprite(node.Token(1))
	case node.Token(0) == "hover" && node.Size() >= 2 && e.name == "":
		e.sprite[StateHover] = assets.Sprite(node.Token(1))
	case e.isOutline && node.Token(0) == "colored":
		e.isColored = true
	default:
		return false
	}
	return true
}

func (e *imageElement) getSprite(info Information, state int) *Sprite {
	if e.name == "" {
		return e.sprite[state]
	}
	return info.GetSprite(e.name)
}

func (e *imageElement) nativeDimensions(d Driver, info Information, state int) geom.Point {
	sprite := e.getSprite(info, state)
	if sprite == nil || sprite.Width() == 0 || sprite.Height() == 0 {
		return geom.Point{}
	}

	size := geom.Pt(sprite.Width(), sprite.Height())
	if e.bounds.Dimensions.IsZero() {
		return size
	}

	// A zero dimension leaves that axis unconstrained: give it a huge scale
	// factor so the constrained axis wins the min().
	xScale, yScale := 1000., 1000.
	if e.bounds.Width() != 0 {
		xScale = e.bounds.Width() / size.X
	}
	if e.bounds.Height() != 0 {
		yScale = e.bounds.Height() / size.Y
	}
	return size.Scale(math.Min(xScale, yScale))
}

func (e *imageElement) draw(d Driver, rect geom.Rect, info Information, state int) {
	sprite := e.getSprite(info, state)
	if sprite == nil || sprite.Width() == 0 || sprite.Height() == 0 {
		return
	}

	if e.isOutline {
		col := outlineWhite
		if e.isColored {
			col = info.OutlineColor()
		}
		d.DrawOutline(sprite, rect.Center, rect.Dimensions, col, info.SpriteUnit(e.name), info.SpriteFrame(e.name))
	} else {
		d.DrawSprite(sprite, rect.Center, rect.Width()/sprite.Width())
	}
}
