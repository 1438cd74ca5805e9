package ui

import (
	"facet/datanode"
	"facet/geom"
)

// pointElement is a named rectangle with the full geometry grammar but no
// drawing behavior; hosts query it to do custom drawing at a known spot.
type pointElement struct {
	elementBase
}

// Interface is a named, loadable collection of layout points and drawable
// elements sharing one screen anchor. It is built once by Load (further Load
// calls append) and is immutable afterwards; Draw may then be called every
// frame. Load must not run concurrently with Draw.
type Interface struct {
	alignment geom.Point
	points    map[string]*pointElement
	elements  []element
}

// loadConditions is the carry-over parse state threaded through the child
// nodes of an interface: the visibility and activation condition names that
// stamp every element declared after them, until redefined.
type loadConditions struct {
	visibleIf string
	activeIf  string
}

// Load populates the interface from an `interface <name> [alignment...]`
// node. Unnamed interfaces are ignored. Unrecognized child nodes get a trace
// warning and are skipped; nothing in here is fatal.
func (in *Interface) Load(node *datanode.Node, assets Assets) {
	if node.Size() < 2 {
		return
	}

	parseAlignment(node, &in.alignment, 2)

	var cond loadConditions
	for _, child := range node.Children() {
		cond = in.loadChild(child, assets, cond)
	}
}

// loadChild parses one child node, returning the (possibly updated)
// carry-over conditions for the next sibling.
func (in *Interface) loadChild(child *datanode.Node, assets Assets, cond loadConditions) loadConditions {
	tok := child.Token(0)
	switch {
	case (tok == "point" || tok == "box") && child.Size() >= 2:
		p := &pointElement{}
		loadElement(p, child, in.alignment, assets)
		if in.points == nil {
			in.points = make(map[string]*pointElement)
		}
		in.points[child.Token(1)] = p

	case tok == "visible" || tok == "active":
		// `visible if <name>` applies <name> to the elements that follow; a
		// bare `visible` resets to "always".
		name := ""
		if child.Size() >= 3 && child.Token(1) == "if" {
			name = child.Token(2)
		}
		if tok == "visible" {
			cond.visibleIf = name
		} else {
			cond.activeIf = name
		}

	default:
		var e element
		switch tok {
		case "sprite", "image", "outline":
			e = newImageElement(child, in.alignment, assets)
		case "label", "string", "button":
			e = newTextElement(child, in.alignment, assets)
		case "bar", "ring":
			e = newBarElement(child, in.alignment, assets)
		default:
			child.PrintTrace("Unrecognized interface element:")
			return cond
		}
		b := e.base()
		b.visibleIf, b.activeIf = cond.visibleIf, cond.activeIf
		in.elements = append(in.elements, e)
	}
	return cond
}

// Draw resolves and draws every element in declaration order (so later
// elements render on top), anchored to the screen corner, edge or center the
// interface's alignment selects. host may be nil when no clickable zones are
// wanted.
func (in *Interface) Draw(d Driver, info Information, host ClickHost) {
	anchor := d.ScreenDimensions().Mul(in.alignment).Scale(.5)
	for _, e := range in.elements {
		drawAt(e, d, anchor, info, host)
	}
}

// HasPoint reports whether a named point exists.
func (in *Interface) HasPoint(name string) bool {
	_, ok := in.points[name]
	return ok
}

// GetPoint returns the screen-space center of the named point for the given
// screen dimensions, or the zero point if it does not exist.
func (in *Interface) GetPoint(name string, screen geom.Point) geom.Point {
	p, ok := in.points[name]
	if !ok {
		return geom.Point{}
	}
	return p.bounds.Center.Add(screen.Mul(in.alignment).Scale(.5))
}

// GetSize returns the dimensions of the named point, or the zero point if it
// does not exist.
func (in *Interface) GetSize(name string) geom.Point {
	p, ok := in.points[name]
	if !ok {
		return geom.Point{}
	}
	return p.bounds.Dimensions
}

// GetBox returns the screen-space rectangle of the named point for the given
// screen dimensions, or the zero rectangle if it does not exist.
func (in *Interface) GetBox(name string, screen geom.Point) geom.Rect {
	p, ok := in.points[name]
	if !ok {
		return geom.Rect{}
	}
	return p.bounds.Translate(screen.Mul(in.alignment).Scale(.5))
}
