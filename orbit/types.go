package orbit

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2019/core"
)

// Default identifiers used by the puzzle inputs. Every operation takes its
// root and targets explicitly; these are only defaults for callers.
const (
	// DefaultRoot is the universal Center of Mass.
	DefaultRoot = "COM"
	// DefaultFrom is the object the traveller is orbiting.
	DefaultFrom = "YOU"
	// DefaultTo is the object Santa is orbiting.
	DefaultTo = "SAN"
)

// Separator splits a parent from its child on one line of an orbit map.
const Separator = ")"

// ErrEdgeFormat indicates a line that does not hold exactly one parent and
// one child.
var ErrEdgeFormat = errors.New("orbit: malformed edge")

// LineError reports which line of an orbit map could not be parsed.
type LineError struct {
	// Line is the zero-based index of the offending line.
	Line int
	// Content is the raw line.
	Content string
	// Tokens is how many identifiers the line split into.
	Tokens int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("orbit: line %d: link contained %d nodes: %q", e.Line, e.Tokens, e.Content)
}

// Unwrap lets errors.Is match ErrEdgeFormat.
func (e *LineError) Unwrap() error { return ErrEdgeFormat }

// Edge states that Child orbits Parent.
type Edge struct {
	Parent, Child string
}

func (e Edge) String() string { return e.Parent + Separator + e.Child }

// Graph is an orbit map: a directed graph with an edge Parent→Child for
// every orbit, children kept in input order. A Graph is immutable once
// built; a nil *Graph behaves as an empty map.
type Graph struct {
	store *core.Graph
}

// BuildGraph stores edges in a core.Graph. Children keep the order in which
// their edges appear; duplicate edges are kept as given. An edge with an
// empty identifier is rejected with ErrEdgeFormat.
// Complexity: O(E).
func BuildGraph(edges []Edge) (*Graph, error) {
	store := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for i, e := range edges {
		if _, err := store.AddEdge(e.Parent, e.Child); err != nil {
			return nil, fmt.Errorf("%w: edge %d %q: %w", ErrEdgeFormat, i, e.String(), err)
		}
	}

	return &Graph{store: store}, nil
}

// Children returns the objects directly orbiting id, in input order.
func (g *Graph) Children(id string) []string {
	if g == nil {
		return nil
	}
	nbs, err := g.store.Neighbors(id)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range nbs {
		out = append(out, e.To)
	}

	return out
}

// IsLeaf reports whether nothing orbits id.
func (g *Graph) IsLeaf(id string) bool {
	return g == nil || g.store.OutDegree(id) == 0
}

// Parents lists, sorted, every object that has at least one satellite.
func (g *Graph) Parents() []string {
	if g == nil {
		return nil
	}
	var out []string
	for _, id := range g.store.Vertices() {
		if g.store.OutDegree(id) > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out
}

// Len returns the number of edges in g.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return g.store.EdgeCount()
}

// Edges lists every edge grouped by parent, parents sorted, children in
// input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.Len())
	for _, p := range g.Parents() {
		for _, c := range g.Children(p) {
			out = append(out, Edge{Parent: p, Child: c})
		}
	}

	return out
}

// has reports whether id appears in g at all.
func (g *Graph) has(id string) bool {
	return g != nil && g.store.HasVertex(id)
}
