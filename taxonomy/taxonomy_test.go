package taxonomy_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arborlab/porphyry/arbor"
	"github.com/arborlab/porphyry/taxonomy"
	"github.com/stretchr/testify/require"
)

func TestPorphyrian_BuildsSample(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(64))
	require.NoError(t, taxonomy.Porphyrian(a))

	require.Equal(t, taxonomy.PorphyrianOrder(), a.Order())

	// The edge order is fixed, so ids are stable across runs.
	for label, want := range map[string]int{
		"substance": 0,
		"body":      1,
		"living":    3,
		"Plato":     11,
		"chicken":   17,
	} {
		id, ok := a.IDOf(label)
		require.True(t, ok, "label %q missing", label)
		require.Equal(t, want, id, "label %q", label)
	}

	// The classic six-hop chain must hold on the built sample.
	path := a.ShortestPath("Plato", "chicken")
	require.Len(t, path, 7)
}

func TestPorphyrian_CapacityPropagates(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(4))
	err := taxonomy.Porphyrian(a)
	require.ErrorIs(t, err, arbor.ErrCapacityExceeded)
}

func TestSynthetic_Shape(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(16))
	require.NoError(t, taxonomy.Synthetic(a, 3, 2))

	// 1 + 2 + 4 nodes across three levels.
	require.Equal(t, 7, a.Order())

	root, ok := a.IDOf("L1_0")
	require.True(t, ok)
	require.Equal(t, 0, root)

	// Leaves sit two hops from the root.
	path := a.ShortestPath("L1_0", "L3_3")
	require.Len(t, path, 3)
}

func TestSynthetic_RootOnly(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(4))
	require.NoError(t, taxonomy.Synthetic(a, 1, 3))
	require.Equal(t, 1, a.Order())
}

func TestSynthetic_BadShape(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(4))
	require.ErrorIs(t, taxonomy.Synthetic(a, 0, 2), taxonomy.ErrBadShape)
	require.ErrorIs(t, taxonomy.Synthetic(a, 2, 0), taxonomy.ErrBadShape)
}

func TestSynthetic_CapacityPropagates(t *testing.T) {
	a := arbor.New(arbor.WithCapacity(3))
	err := taxonomy.Synthetic(a, 3, 2)
	require.ErrorIs(t, err, arbor.ErrCapacityExceeded)
}

const sampleDoc = `
name: minimal
taxa:
  - label: substance
    children: [body, incorporeal]
  - label: body
    children: [living]
`

func TestLoad_AndApply(t *testing.T) {
	doc, err := taxonomy.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, "minimal", doc.Name)
	require.Len(t, doc.Taxa, 2)

	a := arbor.New(arbor.WithCapacity(8))
	require.NoError(t, doc.Apply(a))

	require.Equal(t, 4, a.Order())

	// Document order fixes the ids: substance first, then its children.
	id, ok := a.IDOf("substance")
	require.True(t, ok)
	require.Equal(t, 0, id)

	path := a.ShortestPath("incorporeal", "living")
	require.Len(t, path, 4) // incorporeal → substance → body → living
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := taxonomy.Load(strings.NewReader("taxa: [:"))
	require.ErrorIs(t, err, taxonomy.ErrDecode)
}

func TestLoad_EmptyDocument(t *testing.T) {
	_, err := taxonomy.Load(strings.NewReader("name: hollow\n"))
	require.ErrorIs(t, err, taxonomy.ErrEmptyDocument)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	doc, err := taxonomy.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "minimal", doc.Name)

	_, err = taxonomy.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApply_CapacityPropagates(t *testing.T) {
	doc, err := taxonomy.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	a := arbor.New(arbor.WithCapacity(2))
	require.ErrorIs(t, doc.Apply(a), arbor.ErrCapacityExceeded)
}
