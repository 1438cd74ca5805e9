package ui

import "facet/datanode"

// Set is a named registry of interfaces built from parsed definition files.
type Set struct {
	interfaces map[string]*Interface
}

// Load walks top-level nodes and loads every `interface <name>` node into
// the registry. Loading a name that already exists appends to the existing
// interface. Other root nodes get a trace warning and are skipped.
func (s *Set) Load(nodes []*datanode.Node, assets Assets) {
	for _, node := range nodes {
		if node.Token(0) != "interface" {
			node.PrintTrace("Skipping unrecognized root node:")
			continue
		}
		if node.Size() < 2 {
			node.PrintTrace("Skipping unnamed interface:")
			continue
		}
		s.Get(node.Token(1)).Load(node, assets)
	}
}

// Get returns the interface with the given name, creating an empty one if it
// does not exist yet so callers never need a nil check.
func (s *Set) Get(name string) *Interface {
	if s.interfaces == nil {
		s.interfaces = make(map[string]*Interface)
	}
	in, ok := s.interfaces[name]
	if !ok {
		in = &Interface{}
		s.interfaces[name] = in
	}
	return in
}

// Has reports whether an interface with the given name has been loaded.
func (s *Set) Has(name string) bool {
	_, ok := s.interfaces[name]
	return ok
}
