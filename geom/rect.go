package geom

import "math"

// Rect is an axis-aligned rectangle stored as a center point plus a
// dimensions vector. Dimensions are non-negative whenever the rectangle was
// built through FromCorners; NewRect trusts its caller.
type Rect struct {
	Center     Point
	Dimensions Point
}

// NewRect builds a rectangle from its center and dimensions.
func NewRect(center, dimensions Point) Rect {
	return Rect{Center: center, Dimensions: dimensions}
}

// FromCorners builds the rectangle spanning two opposite corners, in either
// order. The center is their midpoint and the dimensions their absolute
// difference.
func FromCorners(a, b Point) Rect {
	return Rect{
		Center:     a.Add(b).Scale(.5),
		Dimensions: Pt(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y)),
	}
}

func (r Rect) Width() float64 {
	return r.Dimensions.X
}

func (r Rect) Height() float64 {
	return r.Dimensions.Y
}

func (r Rect) TopLeft() Point {
	return r.Center.Sub(r.Dimensions.Scale(.5))
}

func (r Rect) BottomRight() Point {
	return r.Center.Add(r.Dimensions.Scale(.5))
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	d := p.Sub(r.Center)
	return math.Abs(d.X) <= .5*r.Dimensions.X && math.Abs(d.Y) <= .5*r.Dimensions.Y
}

// Translate returns the rectangle shifted by the given vector. Used to move
// interface-local bounds into screen space.
func (r Rect) Translate(p Point) Rect {
	return Rect{Center: r.Center.Add(p), Dimensions: r.Dimensions}
}
