// Package datanode holds the generic token-tree structure that interface
// definitions are parsed into: each node is an ordered list of string tokens
// plus an ordered list of child nodes. Numeric tokens are converted on
// demand. Malformed data is reported with a trace diagnostic and otherwise
// ignored; nothing in this package aborts on bad designer input.
package datanode

import (
	"log"
	"strconv"
	"strings"
)

// Node is one line of an interface definition plus its indented children.
type Node struct {
	tokens   []string
	children []*Node

	// Source position, for trace diagnostics. Nodes built in code have an
	// empty file and line zero.
	file string
	line int
}

// New builds a node from tokens, for hosts and tests that assemble trees in
// code rather than reading them from a file.
func New(tokens ...string) *Node {
	return &Node{tokens: tokens}
}

// Add appends a child node and returns it so call sites can chain building.
func (n *Node) Add(tokens ...string) *Node {
	child := &Node{tokens: tokens, file: n.file, line: n.line}
	n.children = append(n.children, child)
	return child
}

// Size returns the number of tokens on this line.
func (n *Node) Size() int {
	return len(n.tokens)
}

// Token returns the i-th token, or "" if i is out of range.
func (n *Node) Token(i int) string {
	if i < 0 || i >= len(n.tokens) {
		return ""
	}
	return n.tokens[i]
}

// Value converts the i-th token to a number. A missing or malformed token is
// reported as a trace warning and yields 0.
func (n *Node) Value(i int) float64 {
	if i < 0 || i >= len(n.tokens) {
		n.PrintTrace("Requested token index (" + strconv.Itoa(i) + ") is out of bounds:")
		return 0
	}
	v, err := strconv.ParseFloat(n.tokens[i], 64)
	if err != nil {
		n.PrintTrace("Cannot convert value \"" + n.tokens[i] + "\" to a number:")
		return 0
	}
	return v
}

// Children returns the child nodes in declaration order.
func (n *Node) Children() []*Node {
	return n.children
}

// PrintTrace reports a non-fatal problem with this node's data, with enough
// context to find the offending line. Parsing always continues after a trace.
func (n *Node) PrintTrace(message string) {
	where := ""
	if n.file != "" {
		where = n.file + ":" + strconv.Itoa(n.line) + ": "
	}
	log.Printf("%s%s\n%s", where, message, strings.Join(n.tokens, " "))
}
