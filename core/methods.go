package core

import (
	"slices"
	"strconv"
	"sync/atomic"
)

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.order = append(g.order, id)

	return nil
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds a directed edge from→to, creating missing endpoints, and
// returns its ID.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1. Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2. Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3. Multi-edge check
	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 4. Store in from's ordered adjacency
	e := &Edge{ID: nextEdgeID(g), From: from, To: to}
	g.out[from] = append(g.out[from], e)
	g.edgeCount++

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Neighbors returns id's outgoing edges in insertion order. The slice is a
// copy; treat the edges as read-only.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return slices.Clone(g.out[id]), nil
}

// OutDegree returns the number of edges leaving id; 0 for unknown vertices.
func (g *Graph) OutDegree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[id])
}

// Vertices returns every vertex ID in insertion order.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return slices.Clone(g.order)
}

// Edges returns every edge, grouped by source vertex in vertex insertion
// order, each group in insertion order.
func (g *Graph) Edges() []*Edge {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for _, id := range g.order {
		out = append(out, g.out[id]...)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// nextEdgeID returns a monotonic textual ID ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
