package ui

import (
	"testing"

	"facet/datanode"
	"facet/geom"
)

func TestLabelDefaultsToMedium(t *testing.T) {
	assets := newTestAssets()
	medium := assets.setColor("medium", rlColor(128, 128, 128))

	e := newTextElement(datanode.New("label", "Cargo"), geom.Point{}, assets)
	if e.isDynamic {
		t.Fatal("label should be static")
	}
	if e.str != "Cargo" {
		t.Fatalf("str: %q", e.str)
	}
	for state := StateInactive; state < stateCount; state++ {
		if e.color[state] != medium {
			t.Fatalf("state %d should default to medium", state)
		}
	}
}

func TestStringDefaultsToBright(t *testing.T) {
	assets := newTestAssets()
	bright := assets.setColor("bright", rlColor(230, 230, 230))

	e := newTextElement(datanode.New("string", "pilot"), geom.Point{}, assets)
	if !e.isDynamic {
		t.Fatal("string should be dynamic")
	}
	if e.color[StateActive] != bright {
		t.Fatal("dynamic string should default to bright")
	}
}

func TestButtonDefaultsToStatePalette(t *testing.T) {
	assets := newTestAssets()
	active := assets.setColor("active", rlColor(222, 222, 222))
	inactive := assets.setColor("inactive", rlColor(102, 102, 102))
	hover := assets.setColor("hover", rlColor(255, 255, 255))

	e := newTextElement(datanode.New("button", "d", "Dismiss"), geom.Point{}, assets)
	if e.buttonKey != 'd' || e.str != "Dismiss" {
		t.Fatalf("button parse: key %q str %q", e.buttonKey, e.str)
	}
	if e.color[StateActive] != active || e.color[StateInactive] != inactive || e.color[StateHover] != hover {
		t.Fatal("button should use the three-way state palette")
	}
}

func TestExplicitColorCoversUnsetStates(t *testing.T) {
	assets := newTestAssets()
	col := assets.setColor("gold", rlColor(230, 180, 80))
	hover := assets.setColor("white", rlColor(255, 255, 255))

	node := datanode.New("button", "g")
	node.Add("color", "gold")
	node.Add("hover", "white")
	e := newTextElement(node, geom.Point{}, assets)
	if e.color[StateActive] != col || e.color[StateInactive] != col {
		t.Fatal("unset states should fall back to the explicit color")
	}
	if e.color[StateHover] != hover {
		t.Fatal("explicit hover color ignored")
	}
}

func TestDynamicStringResolvesAtDrawTime(t *testing.T) {
	assets := newTestAssets()
	assets.setColor("bright", rlColor(230, 230, 230))
	node := datanode.New("string", "pilot")
	node.Add("from", "0", "0", "to", "100", "14")
	node.Add("align", "left", "top")
	e := newTextElement(node, geom.Point{}, assets)

	info := &Values{}
	info.SetString("pilot", "Hello")

	d := newFakeDriver()
	if got := e.nativeDimensions(d, info, StateActive); !pointNear(got, d.TextSize("Hello", 14)) {
		t.Fatalf("native dimensions: %+v", got)
	}

	drawAt(e, d, geom.Point{}, info, nil)
	if len(d.ops) != 1 || d.ops[0].text != "Hello" {
		t.Fatalf("ops: %+v", d.ops)
	}
	// Alignment (-1,-1) with zero padding puts the text at the box's
	// top-left corner.
	if !pointNear(d.ops[0].topLeft, geom.Pt(0, 0)) {
		t.Fatalf("topLeft: %+v", d.ops[0].topLeft)
	}
}

func TestFontSizeAttribute(t *testing.T) {
	node := datanode.New("label", "Title")
	node.Add("size", "18")
	e := newTextElement(node, geom.Point{}, newTestAssets())
	if e.fontSize != 18 {
		t.Fatalf("fontSize: %d", e.fontSize)
	}

	d := newFakeDriver()
	if got := e.nativeDimensions(d, &Values{}, StateActive); !pointNear(got, d.TextSize("Title", 18)) {
		t.Fatalf("native dimensions: %+v", got)
	}
}

func TestLabelRegistersNoZone(t *testing.T) {
	node := datanode.New("label", "Cargo")
	node.Add("from", "0", "0", "to", "100", "50")
	e := newTextElement(node, geom.Point{}, newTestAssets())

	host := &zoneHost{}
	drawAt(e, newFakeDriver(), geom.Point{}, &Values{}, host)
	if len(host.boxes) != 0 {
		t.Fatal("label registered a zone")
	}
}

func TestUnderSpecifiedTextNodeIsInert(t *testing.T) {
	e := newTextElement(datanode.New("label"), geom.Point{}, newTestAssets())
	d := newFakeDriver()
	host := &zoneHost{}
	drawAt(e, d, geom.Point{}, &Values{}, host)
	if len(d.ops) != 0 {
		t.Fatalf("under-specified element drew: %+v", d.ops)
	}
	if len(host.boxes) != 0 {
		t.Fatal("under-specified element registered a zone")
	}
}
