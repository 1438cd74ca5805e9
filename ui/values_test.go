package ui

import (
	"testing"

	"facet/geom"
)

func TestValuesZeroValue(t *testing.T) {
	var v Values
	if !v.HasCondition("") {
		t.Fatal("empty condition name must always hold")
	}
	if v.HasCondition("anything") {
		t.Fatal("unset condition reported true")
	}
	if v.GetString("pilot") != "" || v.GetSprite("face") != nil {
		t.Fatal("zero Values returned non-zero lookups")
	}
	if v.BarValue("hull") != 0 || v.BarSegments("hull") != 0 {
		t.Fatal("zero Values returned non-zero bar state")
	}
}

func TestValuesRoundTrip(t *testing.T) {
	var v Values
	v.SetCondition("landed", true)
	if !v.HasCondition("landed") {
		t.Fatal("condition not set")
	}
	v.SetCondition("landed", false)
	if v.HasCondition("landed") {
		t.Fatal("condition not cleared")
	}

	v.SetString("pilot", "Amra")
	if v.GetString("pilot") != "Amra" {
		t.Fatalf("string = %q", v.GetString("pilot"))
	}

	s := &Sprite{Name: "ship", Texture: texture(64, 64)}
	v.SetSprite("player", s, geom.Pt(0, -1), 3)
	if v.GetSprite("player") != s {
		t.Fatal("sprite lookup mismatch")
	}
	if got := v.SpriteUnit("player"); !pointNear(got, geom.Pt(0, -1)) {
		t.Fatalf("unit = %v", got)
	}
	if v.SpriteFrame("player") != 3 {
		t.Fatalf("frame = %d", v.SpriteFrame("player"))
	}

	v.SetBar("hull", .75, 6)
	if v.BarValue("hull") != .75 || v.BarSegments("hull") != 6 {
		t.Fatalf("bar = %v / %v", v.BarValue("hull"), v.BarSegments("hull"))
	}

	v.SetOutlineColor(rlColor(0, 200, 0))
	if v.OutlineColor() != rlColor(0, 200, 0) {
		t.Fatalf("outline color = %v", v.OutlineColor())
	}
}
