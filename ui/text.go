package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"facet/datanode"
	"facet/geom"
)

const defaultFontSize = 14

// textElement draws a static label, a dynamically resolved string, or a
// button with a trigger key. Buttons register a clickable zone; the other
// forms never do.
type textElement struct {
	elementBase

	str       string
	isDynamic bool
	buttonKey rune
	fontSize  int
	color     [stateCount]*rl.Color
}

func newTextElement(node *datanode.Node, global geom.Point, assets Assets) *textElement {
	e := &textElement{fontSize: defaultFontSize}
	if node.Size() < 2 {
		return e
	}

	e.isDynamic = node.Token(0) == "string"
	if node.Token(0) == "button" {
		for _, r := range node.Token(1) {
			e.buttonKey = r
			break
		}
		if node.Size() >= 3 {
			e.str = node.Token(2)
		}
	} else {
		e.str = node.Token(1)
	}

	loadElement(e, node, global, assets)

	// Default coloring: dynamic strings are "bright", labels "medium". A
	// button with no explicit color gets the three-way state palette, and an
	// explicit base color also covers any unspecified states.
	if e.color[StateActive] == nil && e.buttonKey == 0 {
		if e.isDynamic {
			e.color[StateActive] = assets.Color("bright")
		} else {
			e.color[StateActive] = assets.Color("medium")
		}
	}
	if e.color[StateActive] == nil {
		e.color[StateActive] = assets.Color("active")
		if e.color[StateInactive] == nil {
			e.color[StateInactive] = assets.Color("inactive")
		}
		if e.color[StateHover] == nil {
			e.color[StateHover] = assets.Color("hover")
		}
	} else {
		if e.color[StateInactive] == nil {
			e.color[StateInactive] = e.color[StateActive]
		}
		if e.color[StateHover] == nil {
			e.color[StateHover] = e.color[StateActive]
		}
	}
	return e
}

func (e *textElement) parseLine(node *datanode.Node, assets Assets) bool {
	switch {
	case node.Token(0) == "size" && node.Size() >= 2:
		e.fontSize = int(node.Value(1))
	case node.Token(0) == "color" && node.Size() >= 2:
		e.color[StateActive] = assets.Color(node.Token(1))
	case node.Token(0) == "inactive" && node.Size() >= 2:
		e.color[StateInactive] = assets.Color(node.Token(1))
	case node.Token(0) == "hover" && node.Size() >= 2:
		e.color[StateHover] = assets.Color(node.Token(1))
	default:
		return false
	}
	return true
}

func (e *textElement) text(info Information) string {
	if e.isDynamic {
		return info.GetString(e.str)
	}
	return e.str
}

func (e *textElement) nativeDimensions(d Driver, info Information, state int) geom.Point {
	return d.TextSize(e.text(info), e.fontSize)
}

func (e *textElement) draw(d Driver, rect geom.Rect, info Information, state int) {
	// A partially loaded element may have no color; draw nothing.
	if e.color[state] == nil {
		return
	}
	d.DrawText(e.text(info), e.fontSize, rect.TopLeft(), *e.color[state])
}

func (e *textElement) place(box geom.Rect, host ClickHost) {
	if e.buttonKey != 0 {
		host.AddZone(box, e.buttonKey)
	}
}
