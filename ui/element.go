package ui

import (
	"facet/datanode"
	"facet/geom"
)

// element is the closed set of things an interface can draw. The three
// concrete kinds (image, text, bar) embed elementBase and override the
// methods they care about; named points reuse the base as-is.
type element interface {
	base() *elementBase

	// parseLine is offered every attribute line the shared geometry grammar
	// does not recognize. It reports whether it consumed the line.
	parseLine(node *datanode.Node, assets Assets) bool

	// nativeDimensions reports the intrinsic size of the element's content
	// in the given state, before placement within its bounding box.
	nativeDimensions(d Driver, info Information, state int) geom.Point

	// draw renders the element into the resolved screen rectangle.
	draw(d Driver, rect geom.Rect, info Information, state int)

	// place registers any clickable zone for this element. It is called
	// whenever the element is visible, even while inactive, so a disabled
	// button can still explain itself when clicked.
	place(box geom.Rect, host ClickHost)
}

// elementBase carries the attributes shared by every element: local bounds in
// interface coordinates, the element's own alignment and padding, and the
// names of the conditions controlling visibility and activation (empty means
// always).
type elementBase struct {
	bounds    geom.Rect
	alignment geom.Point
	padding   geom.Point
	visibleIf string
	activeIf  string
}

func (b *elementBase) base() *elementBase { return b }

func (b *elementBase) parseLine(*datanode.Node, Assets) bool { return false }

func (b *elementBase) nativeDimensions(Driver, Information, int) geom.Point {
	return b.bounds.Dimensions
}

func (b *elementBase) draw(Driver, geom.Rect, Information, int) {}

func (b *elementBase) place(geom.Rect, ClickHost) {}

// loadElement applies the shared geometry grammar to e, line by line. Each
// recognized line mutates the bounds in place, so line order matters and a
// later line overrides an earlier one. The global (interface) alignment
// decides which box edge stays fixed when a width or height line resizes a
// non-centered element; the element's own alignment drives content placement
// and the single-point "from" form.
func loadElement(e element, node *datanode.Node, global geom.Point, assets Assets) {
	b := e.base()

	// A screen-centered interface gives its elements centered semantics too,
	// and a "center" line switches an element over regardless.
	isCentered := global.IsZero()

	for _, child := range node.Children() {
		tok := child.Token(0)
		hasDimensions := tok == "dimensions" && child.Size() >= 3
		hasWidth := hasDimensions || (tok == "width" && child.Size() >= 2)
		hasHeight := hasDimensions || (tok == "height" && child.Size() >= 2)

		switch {
		case tok == "align" && child.Size() > 1:
			parseAlignment(child, &b.alignment, 1)

		case hasWidth || hasHeight:
			// Resizing keeps the edge the global alignment points toward
			// fixed, unless this element is centered, in which case the
			// center stays put.
			if hasWidth {
				newWidth := child.Value(1)
				center, dims := b.bounds.Center, b.bounds.Dimensions
				if !isCentered {
					center.X += .5 * global.X * (dims.X - newWidth)
				}
				dims.X = newWidth
				b.bounds = geom.NewRect(center, dims)
			}
			if hasHeight {
				index := 1
				if hasDimensions {
					index = 2
				}
				newHeight := child.Value(index)
				center, dims := b.bounds.Center, b.bounds.Dimensions
				if !isCentered {
					center.Y += .5 * global.Y * (dims.Y - newHeight)
				}
				dims.Y = newHeight
				b.bounds = geom.NewRect(center, dims)
			}

		case tok == "center" && child.Size() >= 3:
			isCentered = true
			b.bounds = geom.NewRect(geom.Pt(child.Value(1), child.Value(2)), b.bounds.Dimensions)

		case tok == "from" && child.Size() >= 6 && child.Token(3) == "to":
			b.bounds = geom.FromCorners(
				geom.Pt(child.Value(1), child.Value(2)),
				geom.Pt(child.Value(4), child.Value(5)))

		case tok == "from" && child.Size() >= 3:
			// The box extends outward from the given point in the direction
			// implied by the element's own alignment, keeping its size.
			b.bounds = geom.NewRect(
				geom.Pt(child.Value(1), child.Value(2)).Sub(b.alignment.Mul(b.bounds.Dimensions).Scale(.5)),
				b.bounds.Dimensions)

		case tok == "pad" && child.Size() >= 3:
			b.padding = geom.Pt(child.Value(1), child.Value(2))

		default:
			if !e.parseLine(child, assets) {
				child.PrintTrace("Unrecognized interface element attribute:")
			}
		}
	}
}

// drawAt resolves the element for this frame relative to the screen anchor:
// visibility first, then the inactive/active/hover tri-state, zone
// registration, and finally placement of the native content within the
// bounding box by alignment, slack and padding.
func drawAt(e element, d Driver, anchor geom.Point, info Information, host ClickHost) {
	b := e.base()
	if b.visibleIf != "" && !info.HasCondition(b.visibleIf) {
		return
	}

	box := b.bounds.Translate(anchor)
	state := StateActive
	if b.activeIf != "" && !info.HasCondition(b.activeIf) {
		state = StateInactive
	}
	if state == StateActive && box.Contains(d.MousePosition()) {
		state = StateHover
	}
	// Zones are placed even for inactive elements, so the host can show a
	// message explaining why a disabled button does nothing.
	if host != nil {
		e.place(box, host)
	}

	native := e.nativeDimensions(d, info, state)
	slack := b.bounds.Dimensions.Sub(native).Scale(.5).Sub(b.padding)
	rect := geom.NewRect(b.bounds.Center.Add(anchor).Add(b.alignment.Mul(slack)), native)
	e.draw(d, rect, info, state)
}
