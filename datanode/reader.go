package datanode

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read parses an interface definition from r into a list of top-level nodes.
// The format is line based: tokens are separated by spaces or tabs, a token
// may be wrapped in double quotes or backquotes to contain separators, `#`
// starts a comment, and a line indented deeper than the previous one becomes
// a child of it. Blank and comment-only lines are skipped. name labels the
// source in trace diagnostics.
func Read(r io.Reader, name string) ([]*Node, error) {
	root := &Node{file: name}

	// Stack of (indentation, node) pairs; each new line becomes a child of
	// the deepest entry indented less than it.
	type level struct {
		indent int
		node   *Node
	}
	stack := []level{{indent: -1, node: root}}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		indent, tokens := splitLine(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		for stack[len(stack)-1].indent >= indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		node := &Node{tokens: tokens, file: name, line: lineNum}
		parent.children = append(parent.children, node)
		stack = append(stack, level{indent: indent, node: node})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("datanode read %q: %w", name, err)
	}
	return root.children, nil
}

// ReadFile parses the interface definition file at the given path.
func ReadFile(path string) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datanode read: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// splitLine tokenizes a single line, returning its indentation depth (number
// of leading whitespace characters) and its tokens.
func splitLine(line string) (indent int, tokens []string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	indent = i

	for i < len(line) {
		switch c := line[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == '#':
			// Comment: ignore the rest of the line.
			return indent, tokens
		case c == '"' || c == '`':
			// Quoted token; an unterminated quote runs to end of line.
			end := i + 1
			for end < len(line) && line[end] != c {
				end++
			}
			tokens = append(tokens, line[i+1:end])
			if end < len(line) {
				end++
			}
			i = end
		default:
			end := i
			for end < len(line) && line[end] != ' ' && line[end] != '\t' {
				end++
			}
			tokens = append(tokens, line[i:end])
			i = end
		}
	}
	return indent, tokens
}
