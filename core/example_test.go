package core_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2019/core"
)

// ExampleGraph_Neighbors shows that outgoing edges come back in the order
// they were added.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("COM", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("B", "G")

	nbs, _ := g.Neighbors("B")
	for _, e := range nbs {
		fmt.Println(e.ID, e.From, "->", e.To)
	}
	// Output:
	// e2 B -> C
	// e3 B -> G
}
