// Package orbit answers questions about an orbit map: a tree in which an
// edge Parent→Child means "Child orbits Parent".
//
// What:
//
//   - ParseEdges reads "A)B" lines into Edges.
//   - BuildGraph stores edges in a core.Graph, keeping children in input
//     order and duplicate edges as given.
//   - TotalOrbitCount sums, over every object reachable from a root, the
//     number of direct and indirect orbits it takes part in (its depth).
//   - MinimumTransfers counts the orbital transfers needed to move from the
//     object a orbits to the object b orbits, via their lowest common ancestor.
//
// Traversal:
//
//	Both queries are hooks on dfs.DFS from an explicit root. The walk uses an
//	explicit stack, so very deep chains cannot exhaust the goroutine stack,
//	and follows every edge (dfs.WithRevisits) so duplicates count.
//	The map is assumed to be acyclic; no cycle detection is performed and a
//	cyclic map makes the walk run until memory is exhausted.
//
// Complexity:
//
//   - TotalOrbitCount:  Time O(V+E), Memory O(depth·branching)
//   - MinimumTransfers: Time O(V+E), Memory O(depth)
//
// Errors:
//
//   - ErrEdgeFormat  a line does not split into exactly two identifiers;
//     reported as a *LineError carrying the line index and content. An
//     edge with an empty identifier is also ErrEdgeFormat, wrapping
//     core.ErrEmptyVertexID.
package orbit
