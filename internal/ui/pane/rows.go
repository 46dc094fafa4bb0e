// Package pane renders the navigation pane: the destination rows, the
// footer pinned to the bottom and the edge that serves as drag handle.
package pane

import (
	"math"
	"slices"

	"github.com/llehouerou/navshell/internal/destination"
)

// Rows returns the nodes to draw, split into the scrolling main section and
// the footer. Children of a parent that is expanding or collapsing appear
// one by one with the parent's expansion progress.
func Rows(t *destination.Tree) (main, footer []destination.Node) {
	nodes := t.Nodes()
	shown := make([]bool, len(nodes))
	for _, n := range nodes {
		if n.Parent >= 0 && !revealed(t, n, shown) {
			continue
		}
		shown[n.Flat] = true
		if n.Footer {
			footer = append(footer, n)
		} else {
			main = append(main, n)
		}
	}
	return main, footer
}

func revealed(t *destination.Tree, n destination.Node, shown []bool) bool {
	if !shown[n.Parent] {
		return false
	}
	parent, _ := t.Node(n.Parent)
	p := t.ExpandProgress(n.Parent)
	if p <= 0 {
		return false
	}
	count := int(math.Ceil(p * float64(len(parent.Children))))
	return slices.Index(parent.Children, n.Flat) < count
}

// Flats returns the flat indices of rows in display order, main section
// first.
func Flats(main, footer []destination.Node) []int {
	out := make([]int, 0, len(main)+len(footer))
	for _, n := range main {
		out = append(out, n.Flat)
	}
	for _, n := range footer {
		out = append(out, n.Flat)
	}
	return out
}
