package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// SkipChildren, returned by an OnVisit hook, keeps the walk from
	// descending below the current vertex. OnExit is still called for it.
	SkipChildren = errors.New("dfs: skip children")

	// Stop, returned by either hook, ends the walk without an error.
	Stop = errors.New("dfs: stop")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit is invoked when a vertex is entered, with its depth.
	OnVisit func(id string, depth int) error

	// OnExit is invoked after a vertex's descendants are done, with its depth.
	OnExit func(id string, depth int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// Default is -1 (no limit).
	MaxDepth int

	// Revisits makes the walk follow every edge instead of skipping vertices
	// already seen.
	Revisits bool
}

// DefaultOptions returns options with a background context, no hooks, no
// depth limit and a visited set.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithRevisits walks every edge, so a vertex reached along k paths is
// visited k times.
func WithRevisits() Option {
	return func(o *DFSOptions) { o.Revisits = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	// A vertex visited more than once appears once per visit.
	Order []string

	// Depth maps each vertex ID to the depth of its most recent visit.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was most recently entered
	// from. The start vertex has no entry.
	Parent map[string]string

	// Visited flags which vertices were reached.
	Visited map[string]bool

	// Visits counts vertex visits, including repeats under WithRevisits.
	Visits int

	// Stopped reports that a hook ended the walk with Stop.
	Stopped bool
}
