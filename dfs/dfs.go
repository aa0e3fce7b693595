package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2019/core"
)

// frame is one vertex on the walk's explicit stack.
type frame struct {
	id    string
	depth int
	edges []*core.Edge // outgoing edges, fetched on entry
	next  int          // index of the next edge to follow
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from startID.
// It returns the result collected so far along with any abort error.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result
	res := &DFSResult{
		Depth:   make(map[string]int),
		Parent:  make(map[string]string),
		Visited: make(map[string]bool),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse
	err := w.walk(startID)
	if errors.Is(err, Stop) {
		res.Stopped = true
		err = nil
	}

	return res, err
}

// walk drives the explicit stack until it empties or a hook ends the walk.
func (w *dfsWalker) walk(start string) error {
	if err := w.enter(start, "", 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 2. Follow the next edge
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			if !w.opts.Revisits && w.res.Visited[e.To] {
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			if err := w.enter(e.To, top.id, top.depth+1); err != nil {
				return err
			}
			continue
		}

		// 3. All edges done: post-order
		f := *top
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.exit(f.id, f.depth); err != nil {
			return err
		}
	}

	return nil
}

// enter records id, runs the pre-order hook and pushes a frame, or finishes
// id at once when the hook returns SkipChildren.
func (w *dfsWalker) enter(id, parent string, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Visits++
	if depth > 0 {
		w.res.Parent[id] = parent
	}

	if w.opts.OnVisit != nil {
		switch err := w.opts.OnVisit(id, depth); {
		case err == nil:
		case errors.Is(err, SkipChildren):
			return w.exit(id, depth)
		case errors.Is(err, Stop):
			return err
		default:
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, edges: nbs})

	return nil
}

// exit runs the post-order hook and records the finish order.
func (w *dfsWalker) exit(id string, depth int) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id, depth); err != nil {
			if errors.Is(err, Stop) {
				return err
			}
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
