// Package destination flattens the pane's destination hierarchy into flat
// indices and resolves taps into selection, expansion, or popup actions.
package destination

import "strconv"

// Destination is one entry in the pane. Values are declared by the caller
// and never mutated here.
type Destination struct {
	Icon         string
	SelectedIcon string
	Label        string
	Disabled     bool
	// Path addresses the destination in path selection mode.
	Path     string
	Children []Destination
	// InitialExpanded shows the children inline on first build.
	InitialExpanded bool
}

// HasChildren reports whether the destination is a parent. Parents are
// never selectable; tapping them toggles expansion.
func (d Destination) HasChildren() bool {
	return len(d.Children) > 0
}

// Node is a destination placed at a flat index.
type Node struct {
	Flat     int
	Parent   int // flat index of the parent, -1 at top level
	Depth    int
	Footer   bool
	Children []int // flat indices of direct children
	Dest     Destination

	key string
}

// HasChildren reports whether the node is a parent.
func (n Node) HasChildren() bool { return len(n.Children) > 0 }

// IsLeaf reports whether the node can be selected.
func (n Node) IsLeaf() bool { return !n.HasChildren() }

// Flatten assigns depth-first flat indices to every node of main followed
// by footer. Parents take a slot before their children.
func Flatten(main, footer []Destination) []Node {
	var nodes []Node
	var walk func(list []Destination, parent, depth int, isFooter bool, prefix string)
	walk = func(list []Destination, parent, depth int, isFooter bool, prefix string) {
		for i, d := range list {
			flat := len(nodes)
			key := prefix + "/" + strconv.Itoa(i) + ":" + d.Label
			nodes = append(nodes, Node{
				Flat:   flat,
				Parent: parent,
				Depth:  depth,
				Footer: isFooter,
				Dest:   d,
				key:    key,
			})
			if parent >= 0 {
				nodes[parent].Children = append(nodes[parent].Children, flat)
			}
			if d.HasChildren() {
				walk(d.Children, flat, depth+1, isFooter, key)
			}
		}
	}
	walk(main, -1, 0, false, "main")
	walk(footer, -1, 0, true, "footer")
	return nodes
}
