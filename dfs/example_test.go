package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2019/core"
	"github.com/katalvlaran/aoc2019/dfs"
)

// ExampleDFS sums vertex depths with a pre-order hook.
func ExampleDFS() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"COM", "B"}, {"B", "C"}, {"B", "G"}, {"C", "D"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	total := 0
	res, err := dfs.DFS(g, "COM", dfs.WithOnVisit(func(_ string, depth int) error {
		total += depth
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(total)
	// Output:
	// [D C G B COM]
	// 8
}
