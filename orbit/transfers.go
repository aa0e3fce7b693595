package orbit

import "github.com/katalvlaran/aoc2019/dfs"

// MinimumTransfers returns the number of orbital transfers needed to move
// from the object a orbits to the object b orbits. It reports false when
// either object is unreachable from root.
//
// The walk starts at root and, for every subtree, records how far below it
// a and b sit. Where a and b turn up under two different children of one
// node, that node is their lowest common ancestor and the answer is
// distA + distB - 2: the two hops onto a and b themselves are not transfers.
// Once a child's subtree already holds both, its result passes up unchanged.
//
// The walk does not descend below a target, so when one target is an
// ancestor of the other only the upper one is seen and false is returned.
// For the same reason MinimumTransfers(g, root, x, x) reports false.
func MinimumTransfers(g *Graph, root, a, b string) (int, bool) {
	if !g.has(root) {
		return 0, false
	}
	w := &transferWalker{a: a, b: b}
	res := w.run(g, root)
	if res.kind != bothFound {
		return 0, false
	}

	return res.distA + res.distB - 2, true
}

// transferWalker folds search results up the dfs walk. stack holds one
// entry per object on the current path from root.
type transferWalker struct {
	a, b   string
	stack  []search
	result search
}

// run walks the subtree of root in post-order and returns its result.
func (w *transferWalker) run(g *Graph, root string) search {
	_, err := dfs.DFS(g.store, root,
		dfs.WithRevisits(),
		dfs.WithOnVisit(w.visit),
		dfs.WithOnExit(w.exit))
	if err != nil {
		return search{}
	}

	return w.result
}

// visit opens an entry for id. A target is settled at once and its
// satellites are not walked.
func (w *transferWalker) visit(id string, _ int) error {
	switch id {
	case w.a:
		w.stack = append(w.stack, found(targetA, 0))
		return dfs.SkipChildren
	case w.b:
		w.stack = append(w.stack, found(targetB, 0))
		return dfs.SkipChildren
	}
	w.stack = append(w.stack, search{})

	return nil
}

// exit hands id's finished result to its parent's entry. A bothFound result
// ends the walk unchanged.
func (w *transferWalker) exit(string, int) error {
	// 1. Pop this object's result
	res := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	// 2. Complete pair, or back at root: done
	if res.kind == bothFound || len(w.stack) == 0 {
		w.result = res
		w.stack = w.stack[:0]
		return dfs.Stop
	}

	// 3. Otherwise fold into the parent
	parent := &w.stack[len(w.stack)-1]
	*parent = parent.absorb(res)

	return nil
}
