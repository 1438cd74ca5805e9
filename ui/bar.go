package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/datanode"
	"facet/geom"
)

// barElement draws a live fractional value from the runtime context, either
// as a ring around the bounding box's inscribed circle or as a dashed line
// along the box's diagonal from the bottom-right corner to the top-left.
type barElement struct {
	elementBase

	name   string
	color  *rl.Color
	width  float64
	isRing bool
}

func newBarElement(node *datanode.Node, global geom.Point, assets Assets) *barElement {
	e := &barElement{}
	if node.Size() < 2 {
		return e
	}

	e.name = node.Token(1)
	e.isRing = node.Token(0) == "ring"

	loadElement(e, node, global, assets)

	if e.color == nil {
		e.color = assets.Color("active")
	}
	return e
}

func (e *barElement) parseLine(node *datanode.Node, assets Assets) bool {
	switch {
	case node.Token(0) == "color" && node.Size() >= 2:
		e.color = assets.Color(node.Token(1))
	case node.Token(0) == "size" && node.Size() >= 2:
		e.width = node.Value(1)
	default:
		return false
	}
	return true
}

func (e *barElement) draw(d Driver, rect geom.Rect, info Information, state int) {
	// The value and segment count are live; one segment or fewer means a
	// continuous fill.
	value := info.BarValue(e.name)
	segments := info.BarSegments(e.name)
	if segments <= 1 {
		segments = 0
	}

	// A partially loaded element may have no color or width; draw nothing.
	if e.color == nil || e.width == 0 || value == 0 {
		return
	}

	if e.isRing {
		if rect.Width() == 0 || rect.Height() == 0 {
			return
		}
		d.DrawRing(rect.Center, .5*rect.Width(), e.width, value, *e.color, segments)
		return
	}

	// The bar runs from the bottom-right corner toward the top-left.
	start := rect.BottomRight()
	span := rect.Dimensions.Neg()
	length := span.Length()
	if length == 0 {
		return
	}

	// Segmented bars leave a gap the size of the stroke width between
	// (segments - 1) dashes; the last dash is clipped to the target value.
	empty, filled := 0., 1.
	if segments != 0 {
		empty = e.width / length
		filled = (1 - empty*(segments-1)) / segments
	}

	for v := 0.; v < value; {
		from := start.Add(span.Scale(v))
		v += filled
		to := start.Add(span.Scale(math.Min(v, value)))
		v += empty

		d.DrawLine(from, to, e.width, *e.color)
	}
}
