// Command porphyry builds a Porphyrian-style taxonomy into a
// VEB-indexed labeled graph, prints the cluster view and an ASCII tree,
// optionally writes a Graphviz DOT file, and times a shortest-path
// query between two terms.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arborlab/porphyry/arbor"
	"github.com/arborlab/porphyry/render"
	"github.com/arborlab/porphyry/taxonomy"
)

var (
	capacity  int
	docPath   string
	levels    int
	branching int
	asciiRoot string
	dotPath   string
	fromLabel string
	toLabel   string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "porphyry",
		Short:        "Build a VEB-indexed taxonomy and query shortest chains between terms",
		RunE:         run,
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVarP(&capacity, "capacity", "c", 256, "node capacity (VEB universe size)")
	rootCmd.Flags().StringVarP(&docPath, "taxonomy", "f", "", "path to a YAML taxonomy document (default: built-in sample)")
	rootCmd.Flags().IntVar(&levels, "levels", 0, "build a synthetic tree with this many levels instead of the sample")
	rootCmd.Flags().IntVar(&branching, "branching", 2, "branching factor for the synthetic tree")
	rootCmd.Flags().StringVar(&asciiRoot, "root", "substance", "root label for the ASCII tree")
	rootCmd.Flags().StringVar(&dotPath, "dot", "", "write Graphviz DOT text to this path")
	rootCmd.Flags().StringVar(&fromLabel, "from", "Plato", "shortest-path source label")
	rootCmd.Flags().StringVar(&toLabel, "to", "chicken", "shortest-path target label")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	a := arbor.New(arbor.WithCapacity(capacity))

	start := time.Now()
	if err := build(a); err != nil {
		return err
	}
	log.Debugf("built %d nodes into a universe of %d", a.Order(), a.Capacity())
	fmt.Printf("Build time: %v\n", time.Since(start))

	printClusterView(a)

	fmt.Printf("\nASCII diagram (root=%s)\n", asciiRoot)
	if err := render.ASCIITree(os.Stdout, a, asciiRoot); err != nil {
		log.Warnf("ascii tree skipped: %v", err)
	}

	if dotPath != "" {
		out, err := render.DOT(a, "porphyry")
		if err != nil {
			return err
		}
		if err = os.WriteFile(dotPath, out, 0o644); err != nil {
			return err
		}
		log.Infof("wrote %s (render with: dot -Tpng %s -o porphyry.png)", dotPath, dotPath)
	}

	start = time.Now()
	path := a.ShortestPath(fromLabel, toLabel)
	elapsed := time.Since(start)

	if len(path) == 0 {
		fmt.Printf("\nNo path found between %s and %s\n", fromLabel, toLabel)
		return nil
	}

	fmt.Printf("\nShortest path (%s -> %s):\n  %s\n", fromLabel, toLabel, render.PathString(a, path))
	fmt.Printf("Edges (hops): %d\n", len(path)-1)
	fmt.Printf("Nodes between terms (excluding endpoints): %d\n", max(0, len(path)-2))
	fmt.Printf("Dijkstra time: %v\n", elapsed)

	return nil
}

// build populates the graph from the first configured source:
// a YAML document, the synthetic generator, or the built-in sample.
func build(a *arbor.Arbor) error {
	switch {
	case docPath != "":
		doc, err := taxonomy.LoadFile(docPath)
		if err != nil {
			return err
		}
		log.Debugf("loaded taxonomy %q (%d taxa)", doc.Name, len(doc.Taxa))
		return doc.Apply(a)
	case levels > 0:
		return taxonomy.Synthetic(a, levels, branching)
	default:
		return taxonomy.Porphyrian(a)
	}
}

// printClusterView dumps the ids and labels grouped by top-level VEB
// cluster, plus the cached extremes of the index.
func printClusterView(a *arbor.Arbor) {
	fmt.Printf("\n--- VEB view (U=%d) ---\n", a.Capacity())
	for _, g := range a.ClusterView() {
		fmt.Printf("cluster[%d] -> IDs: %v\n", g.Cluster, g.IDs)
		fmt.Printf("labels: %s\n", strings.Join(g.Labels, ", "))
	}
	if mn, ok := a.IndexMin(); ok {
		mx, _ := a.IndexMax()
		fmt.Printf("minID=%d, maxID=%d\n", mn, mx)
	}
}
