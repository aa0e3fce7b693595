package orbit

import "github.com/katalvlaran/aoc2019/dfs"

// TotalOrbitCount returns the number of direct and indirect orbits in the
// tree hanging from root: the sum of the depths of every object reachable
// from root, where root itself has depth 0.
//
// Every edge is followed, so a duplicated edge counts its subtree twice.
// A root absent from g yields 0.
func TotalOrbitCount(g *Graph, root string) int {
	if !g.has(root) {
		return 0
	}

	total := 0
	sum := func(_ string, depth int) error {
		total += depth
		return nil
	}
	if _, err := dfs.DFS(g.store, root, dfs.WithRevisits(), dfs.WithOnVisit(sum)); err != nil {
		return 0
	}

	return total
}
