package render_test

import (
	"os"

	"github.com/arborlab/porphyry/arbor"
	"github.com/arborlab/porphyry/render"
)

// ExampleASCIITree prints a two-branch taxonomy fragment as an
// ASCII-only tree.
func ExampleASCIITree() {
	a := arbor.New(arbor.WithCapacity(8))
	_ = a.Connect("animal", "rational_animal")
	_ = a.Connect("animal", "irrational_animal")
	_ = a.Connect("rational_animal", "man")

	_ = render.ASCIITree(os.Stdout, a, "animal")

	// Output:
	// animal
	// +-rational_animal
	// | +-man
	// +-irrational_animal
}
