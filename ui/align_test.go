package ui

import (
	"testing"

	"facet/datanode"
	"facet/geom"
)

func TestParseAlignmentTokens(t *testing.T) {
	cases := []struct {
		tokens []string
		want   geom.Point
	}{
		{[]string{"align", "left"}, geom.Pt(-1, 0)},
		{[]string{"align", "right"}, geom.Pt(1, 0)},
		{[]string{"align", "top"}, geom.Pt(0, -1)},
		{[]string{"align", "bottom"}, geom.Pt(0, 1)},
		{[]string{"align", "left", "top"}, geom.Pt(-1, -1)},
		{[]string{"align", "right", "bottom"}, geom.Pt(1, 1)},
	}
	for _, c := range cases {
		var got geom.Point
		parseAlignment(datanode.New(c.tokens...), &got, 1)
		if got != c.want {
			t.Errorf("%v: got %+v, want %+v", c.tokens, got, c.want)
		}
	}
}

func TestParseAlignmentLastWins(t *testing.T) {
	var a geom.Point
	parseAlignment(datanode.New("align", "left", "right"), &a, 1)
	if a.X != 1 {
		t.Fatalf("later token should win: got %v", a.X)
	}
	parseAlignment(datanode.New("align", "top", "bottom", "top"), &a, 1)
	if a.Y != -1 {
		t.Fatalf("later token should win: got %v", a.Y)
	}
}

func TestParseAlignmentUnknownTokenKeepsAxes(t *testing.T) {
	a := geom.Pt(-1, 1)
	parseAlignment(datanode.New("align", "middle"), &a, 1)
	if a != geom.Pt(-1, 1) {
		t.Fatalf("unknown token changed alignment: %+v", a)
	}

	// An unknown token does not stop later tokens from applying.
	parseAlignment(datanode.New("align", "middle", "top"), &a, 1)
	if a != geom.Pt(-1, -1) {
		t.Fatalf("token after unknown one not applied: %+v", a)
	}
}

func TestParseAlignmentStartOffset(t *testing.T) {
	var a geom.Point
	parseAlignment(datanode.New("interface", "name", "right", "top"), &a, 2)
	if a != geom.Pt(1, -1) {
		t.Fatalf("offset parse: got %+v", a)
	}
}
