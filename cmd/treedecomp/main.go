// Command treedecomp is a thin demo harness: it reads a line-oriented
// adjacency-list file, runs decomp.Decompose, and prints the resulting bags
// and tree edges. It exists so the module is runnable end-to-end; it is not
// part of the engine's scoped core.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arbortw/treedecomp/decomp"
	"github.com/arbortw/treedecomp/decomp/internal/ingest"
)

func main() {
	path := flag.String("graph", "", "path to a line-oriented adjacency-list file")
	upperBound := flag.Int("upper-bound", 0, "abort the search once width would reach this bound (0 = unset)")
	flag.Parse()

	if *path == "" {
		log.Fatal("treedecomp: -graph is required")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("treedecomp: %v", err)
	}
	defer f.Close()

	g, labels, err := ingest.ReadAdjacencyList(f)
	if err != nil {
		log.Fatalf("treedecomp: %v", err)
	}

	res := decomp.Decompose(g, labels, decomp.Options{UpperBound: *upperBound})
	switch res.Outcome {
	case decomp.Success:
		printDecomposition(res.Decomposition)
	default:
		log.Fatalf("treedecomp: %v", res.Err)
	}
}

func printDecomposition(d *decomp.Decomposition) {
	fmt.Printf("width: %d\n", d.Width)
	for _, bag := range d.Bags {
		fmt.Printf("bag %d: %v\n", bag.ID, bag.Vertices)
	}
	for _, e := range d.Edges {
		fmt.Printf("edge: %d - %d\n", e[0], e[1])
	}
}
