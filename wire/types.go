// Package wire defines the grid primitives, sentinel errors and the Metric
// seam shared by the wire-crossing algorithms.
package wire

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ParsePath and ParseMoves.
var (
	// ErrEmptyMove indicates a move token with no characters.
	ErrEmptyMove = errors.New("wire: empty move")

	// ErrUnknownDirection indicates a move letter other than U, D, L or R.
	ErrUnknownDirection = errors.New("wire: unknown direction")

	// ErrBadMagnitude indicates a magnitude that is not an unsigned integer.
	ErrBadMagnitude = errors.New("wire: magnitude must be an unsigned integer")
)

// Point is a position on the integer grid.
type Point struct {
	X, Y int
}

// Origin is where every wire starts.
var Origin = Point{}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Manhattan returns |X| + |Y|, the Manhattan distance of p from the Origin.
func (p Point) Manhattan() int { return abs(p.X) + abs(p.Y) }

// Distance returns the Manhattan distance between p and q.
func (p Point) Distance(q Point) int { return p.Sub(q).Manhattan() }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Direction is one of the four axis-aligned headings a move can take.
type Direction int

const (
	// Up moves towards +Y.
	Up Direction = iota
	// Down moves towards -Y.
	Down
	// Left moves towards -X.
	Left
	// Right moves towards +X.
	Right
)

// ParseDirection maps a move letter to its Direction.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, c)
}

// Unit returns the displacement of a single step in direction d.
func (d Direction) Unit() Point {
	switch d {
	case Up:
		return Point{Y: 1}
	case Down:
		return Point{Y: -1}
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	}

	return Point{}
}

// String returns the move letter of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return "?"
}

// Move is a single token of a move list: a heading and a number of steps.
type Move struct {
	Dir       Direction
	Magnitude int
}

// Displacement returns the vector covered by m.
func (m Move) Displacement() Point {
	u := m.Dir.Unit()
	return Point{X: u.X * m.Magnitude, Y: u.Y * m.Magnitude}
}

func (m Move) String() string { return fmt.Sprintf("%s%d", m.Dir, m.Magnitude) }

// Segment is the straight stretch of wire between two consecutive points of a
// Path. Source is where the wire enters the segment, Target where it leaves.
type Segment struct {
	Source, Target Point
}

// Vertical reports whether s keeps a constant X. A zero-length segment is
// classified as vertical.
func (s Segment) Vertical() bool { return s.Source.X == s.Target.X }

// Displacement returns Target - Source.
func (s Segment) Displacement() Point { return s.Target.Sub(s.Source) }

// Len returns the number of steps walked along s.
func (s Segment) Len() int { return s.Displacement().Manhattan() }

func (s Segment) String() string { return fmt.Sprintf("[%s -> %s]", s.Source, s.Target) }

// Path is the ordered list of points a wire visits, starting at the Origin.
type Path []Point

// Segments is shorthand for ToSegments(p).
func (p Path) Segments() []Segment { return ToSegments(p) }

// End returns the last point of p, or the Origin for an empty path.
func (p Path) End() Point {
	if len(p) == 0 {
		return Origin
	}

	return p[len(p)-1]
}

// Metric folds the crossings of two paths into a single value. The boolean is
// false when the paths never cross.
//
// ClosestIntersection and ShortestIntersection are Metrics.
type Metric func(a, b Path) (int, bool)

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
