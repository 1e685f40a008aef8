package render_test

import (
	"strings"
	"testing"

	"github.com/arborlab/porphyry/arbor"
	"github.com/arborlab/porphyry/render"
	"github.com/stretchr/testify/require"
)

func TestASCIITree_SmallTree(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	require.NoError(t, a.Connect("a", "b"))
	require.NoError(t, a.Connect("a", "c"))
	require.NoError(t, a.Connect("b", "d"))

	var buf strings.Builder
	require.NoError(t, render.ASCIITree(&buf, a, "a"))

	want := "a\n" +
		"+-b\n" +
		"| +-d\n" +
		"+-c\n"
	require.Equal(t, want, buf.String())
}

func TestASCIITree_RootNotFound(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	_ = a.Connect("a", "b")

	var buf strings.Builder
	err := render.ASCIITree(&buf, a, "entity")
	require.ErrorIs(t, err, render.ErrRootNotFound)
	require.Empty(t, buf.String())
}

func TestASCIITree_CycleTerminates(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	_ = a.Connect("a", "b")
	_ = a.Connect("b", "c")
	_ = a.Connect("c", "a")

	var buf strings.Builder
	require.NoError(t, render.ASCIITree(&buf, a, "a"))

	// Every node exactly once, despite the cycle.
	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "a\n"))
	require.Equal(t, 1, strings.Count(out, "b\n"))
	require.Equal(t, 1, strings.Count(out, "c\n"))
}

func TestDOT_DeclaresNodesAndEdges(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	require.NoError(t, a.Connect("substance", "body"))
	require.NoError(t, a.Connect("body", "living"))

	out, err := render.DOT(a, "porphyry")
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, "graph porphyry {")
	require.Contains(t, text, "rankdir=TB")
	require.Contains(t, text, "shape=box")
	require.Contains(t, text, "label=substance")
	require.Contains(t, text, "n0 -- n1")
	require.Contains(t, text, "n1 -- n2")
}

func TestDOT_SkipsSelfLoops(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	require.NoError(t, a.Connect("x", "x"))

	out, err := render.DOT(a, "loops")
	require.NoError(t, err)
	require.NotContains(t, string(out), "n0 -- n0")
}

func TestPathString(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(8))
	_ = a.Connect("a", "b")
	_ = a.Connect("b", "c")

	path := a.ShortestPath("a", "c")
	require.Equal(t, "a -> b -> c", render.PathString(a, path))

	require.Equal(t, "", render.PathString(a, nil))
}
