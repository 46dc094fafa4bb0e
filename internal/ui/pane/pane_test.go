package pane

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/selection"
)

// 0 Home, 1 Documents (2 Files, 3 Images), 4 Archive (disabled), 5 Settings (footer)
func sampleTree(t *testing.T) (*destination.Tree, *selection.Model) {
	t.Helper()
	icons.Init("none")
	sel := selection.New(selection.Options{Mode: selection.ByPath, InitialPath: "/home"})
	tree := destination.NewTree([]destination.Destination{
		{Label: "Home", Icon: "home", Path: "/home"},
		{Label: "Documents", Icon: "folder", Children: []destination.Destination{
			{Label: "Files", Path: "/docs/files"},
			{Label: "Images", Path: "/docs/images"},
		}},
		{Label: "Archive", Path: "/archive", Disabled: true},
	}, []destination.Destination{{Label: "Settings", Path: "/settings"}}, sel)
	return tree, sel
}

func flats(nodes []destination.Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Flat)
	}
	return out
}

func TestRowsCollapsed(t *testing.T) {
	tree, _ := sampleTree(t)

	main, footer := Rows(tree)
	assert.Equal(t, []int{0, 1, 4}, flats(main))
	assert.Equal(t, []int{5}, flats(footer))
	assert.Equal(t, []int{0, 1, 4, 5}, Flats(main, footer))
}

func TestRowsRevealChildrenProgressively(t *testing.T) {
	tree, _ := sampleTree(t)
	tree.Sync(displaymode.Expanded, true)

	require.Equal(t, destination.ActionToggle, tree.Tap(1).Kind)

	main, _ := Rows(tree)
	assert.Equal(t, []int{0, 1, 4}, flats(main), "nothing revealed before the first frame")

	tree.Advance(time.Millisecond)
	main, _ = Rows(tree)
	assert.Equal(t, []int{0, 1, 2, 4}, flats(main), "first child appears first")

	tree.Advance(destination.ExpandDuration)
	main, _ = Rows(tree)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, flats(main))
}

func TestRenderDimensionsAndHit(t *testing.T) {
	tree, _ := sampleTree(t)

	v := Render(tree, Params{Width: 20, Height: 8, Labels: true, Focus: -1})
	require.Len(t, v.Lines, 8)
	for i, l := range v.Lines {
		assert.Equal(t, 20, ansi.StringWidth(l), "line %d", i)
	}

	flat, ok := v.Hit(0)
	assert.True(t, ok)
	assert.Equal(t, 0, flat)
	flat, ok = v.Hit(7)
	assert.True(t, ok)
	assert.Equal(t, 5, flat, "footer pinned to the last line")
	_, ok = v.Hit(6)
	assert.False(t, ok, "separator line")
	_, ok = v.Hit(4)
	assert.False(t, ok, "blank line")
	_, ok = v.Hit(-1)
	assert.False(t, ok)

	y, ok := v.Line(5)
	assert.True(t, ok)
	assert.Equal(t, 7, y)
	_, ok = v.Line(2)
	assert.False(t, ok, "collapsed child is not drawn")

	plain := ansi.Strip(v.String())
	assert.Contains(t, plain, "Documents")
	assert.Contains(t, plain, "Settings")
	assert.True(t, strings.HasSuffix(ansi.Strip(v.Lines[0]), "│"))
}

func TestRenderRTLPutsEdgeFirst(t *testing.T) {
	tree, _ := sampleTree(t)

	v := Render(tree, Params{Width: 20, Height: 5, Labels: true, RTL: true, Focus: -1})
	first := ansi.Strip(v.Lines[0])
	assert.True(t, strings.HasPrefix(first, "│"))
	assert.True(t, strings.HasSuffix(strings.TrimRight(first, " "), "H"), "glyph at the outer edge: %q", first)
}

func TestRenderRail(t *testing.T) {
	tree, _ := sampleTree(t)
	tree.Sync(displaymode.Medium, false)

	v := Render(tree, Params{Width: 6, Height: 5, Focus: -1})
	assert.NotContains(t, ansi.Strip(v.String()), "Home")
	assert.Equal(t, "  H  │", ansi.Strip(v.Lines[0]))
	assert.Equal(t, " D>  │", ansi.Strip(v.Lines[1]), "parent shows the popup marker")
}

func TestRenderChevrons(t *testing.T) {
	tree, _ := sampleTree(t)
	tree.Sync(displaymode.Expanded, true)

	v := Render(tree, Params{Width: 20, Height: 6, Labels: true, Focus: -1})
	assert.Contains(t, ansi.Strip(v.Lines[1]), "+")

	tree.Tap(1)
	tree.Advance(destination.ExpandDuration)
	v = Render(tree, Params{Width: 20, Height: 6, Labels: true, Focus: -1})
	assert.Contains(t, ansi.Strip(v.Lines[1]), "-")
	assert.Contains(t, ansi.Strip(v.Lines[2]), "   F Files", "children are indented")
}

func TestRenderScrollsToFocus(t *testing.T) {
	tree, _ := sampleTree(t)
	tree.ExpandAll(true)
	tree.Advance(destination.ExpandDuration)

	// 3 lines: 1 main row, separator, footer
	v := Render(tree, Params{Width: 20, Height: 3, Labels: true, Focus: 3})
	flat, ok := v.Hit(0)
	require.True(t, ok)
	assert.Equal(t, 3, flat)
}

func TestRenderEmptySize(t *testing.T) {
	tree, _ := sampleTree(t)
	v := Render(tree, Params{Width: 0, Height: 5})
	assert.Empty(t, v.Lines)
	_, ok := v.Hit(0)
	assert.False(t, ok)
}
