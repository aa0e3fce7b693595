// Package dfs implements depth-first search on core.Graph.
//
// The walk uses an explicit stack rather than recursion, so a chain of any
// length is traversed without growing the goroutine stack. Children are
// visited in core.Graph's insertion order, giving the same visit order a
// recursive walk would.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithOnVisit(fn)      pre-order hook; return SkipChildren to prune, Stop
//     to end the walk, or any other error to abort.
//   - WithOnExit(fn)       post-order hook, called for every visited vertex;
//     Stop ends the walk early, other errors abort.
//   - WithMaxDepth(limit)  do not visit vertices deeper than limit.
//   - WithRevisits()       follow every edge, visiting a vertex once per path
//     that reaches it. Parallel edges are then walked once each. Only safe
//     on acyclic graphs.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any hook error other than SkipChildren and Stop, wrapped.
//
// Complexity:
//
//   - Time:   O(V + E) without revisits; O(number of root paths) with them.
//   - Memory: O(depth) for the stack plus O(V) for the result maps.
package dfs
