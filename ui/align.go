package ui

import (
	"facet/datanode"
	"facet/geom"
)

// parseAlignment interprets the node's tokens from index start onward as
// alignment switches: "left"/"right" set the horizontal axis to -1/+1 and
// "top"/"bottom" set the vertical axis to -1/+1. Tokens are independent, so
// a later token overrides an earlier one on the same axis and untouched axes
// keep their prior value. Unrecognized tokens get a trace warning and are
// skipped.
func parseAlignment(node *datanode.Node, alignment *geom.Point, start int) {
	for i := start; i < node.Size(); i++ {
		switch node.Token(i) {
		case "left":
			alignment.X = -1
		case "top":
			alignment.Y = -1
		case "right":
			alignment.X = 1
		case "bottom":
			alignment.Y = 1
		default:
			node.PrintTrace("Unrecognized interface element alignment:")
		}
	}
}
