// Package geom provides the 2D value types the interface engine positions
// everything with. Points double as vectors; multiplication is component-wise
// because alignment math multiplies a {-1,0,1} vector against half-dimensions.
package geom

import "math"

// Point is a 2D point or vector with value semantics.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul multiplies component-wise.
func (p Point) Mul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale multiplies both components by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether both components are zero. Callers use this to mean
// "no alignment set" or "no dimensions set".
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}
