// Package core provides the directed graph store the traversal and orbit
// packages are built on.
//
// A Graph holds string-identified vertices and directed edges From→To. Each
// vertex keeps its outgoing edges in the order they were added, so
// Neighbors, Vertices and Edges are deterministic without sorting.
//
// Policy flags are fixed at construction:
//
//	WithLoops()       permit v→v edges (default: ErrLoopNotAllowed)
//	WithMultiEdges()  permit repeated From→To edges (default: ErrMultiEdgeNotAllowed)
//
// All methods are safe for concurrent use. muVert guards the vertex catalog,
// muEdgeAdj guards edges and adjacency; when both are needed they are taken
// in that order.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//	AddVertex, HasVertex, AddEdge: O(1) amortized (AddEdge is O(out-degree)
//	when multi-edges are disabled). Neighbors: O(out-degree). Vertices,
//	Edges: O(V+E).
package core
