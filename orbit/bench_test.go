package orbit_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/aoc2019/orbit"
)

// binaryTree builds a complete binary orbit tree of the given depth under
// COM, with YOU and SAN hung off the leftmost and rightmost leaves.
func binaryTree(depth int) *orbit.Graph {
	var edges []orbit.Edge
	maxID := (1 << depth) - 1
	edges = append(edges, orbit.Edge{Parent: "COM", Child: "T1"})
	for i := 2; i <= maxID; i++ {
		edges = append(edges, orbit.Edge{Parent: fmt.Sprintf("T%d", i/2), Child: fmt.Sprintf("T%d", i)})
	}
	edges = append(edges,
		orbit.Edge{Parent: fmt.Sprintf("T%d", 1<<(depth-1)), Child: "YOU"},
		orbit.Edge{Parent: fmt.Sprintf("T%d", maxID), Child: "SAN"},
	)

	g, err := orbit.BuildGraph(edges)
	if err != nil {
		panic(err)
	}

	return g
}

// BenchmarkTotalOrbitCount_Tree12 walks a 4095-node binary tree.
// Complexity: O(V).
func BenchmarkTotalOrbitCount_Tree12(b *testing.B) {
	g := binaryTree(12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = orbit.TotalOrbitCount(g, "COM")
	}
}

func BenchmarkMinimumTransfers_Tree12(b *testing.B) {
	g := binaryTree(12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = orbit.MinimumTransfers(g, "COM", "YOU", "SAN")
	}
}
