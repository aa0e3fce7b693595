package wire

// Crossing records one place where two wires cross.
type Crossing struct {
	// Point is where the wires cross.
	Point Point

	// SegmentA and SegmentB index the crossing segments in each wire.
	SegmentA, SegmentB int

	// StepsA and StepsB count the steps each wire walks from the Origin
	// to reach Point.
	StepsA, StepsB int
}

// Steps returns the combined number of steps both wires walk to reach c.
func (c Crossing) Steps() int { return c.StepsA + c.StepsB }

// Intersect reports where a vertical and a horizontal segment cross.
//
// Orientation is decided by Segment.Vertical alone. When a and b share an
// orientation nothing is reported, collinear overlaps included. Otherwise,
// with the vertical segment at x = vx and the horizontal one at y = hy, the
// segments cross iff vx lies strictly between the horizontal segment's end
// X values and hy lies strictly between the vertical segment's end Y values.
// A touch at any endpoint is therefore not a crossing.
//
// Intersect is symmetric: Intersect(a, b) == Intersect(b, a).
func Intersect(a, b Segment) (Point, bool) {
	if a.Vertical() == b.Vertical() {
		return Point{}, false
	}
	vert, horz := a, b
	if !a.Vertical() {
		vert, horz = b, a
	}

	vx := vert.Source.X
	hy := horz.Source.Y
	if !between(vx, horz.Source.X, horz.Target.X) || !between(hy, vert.Source.Y, vert.Target.Y) {
		return Point{}, false
	}

	return Point{X: vx, Y: hy}, true
}

// between reports whether n lies strictly inside the interval spanned by
// a and b, in either order.
func between(n, a, b int) bool {
	if a > b {
		a, b = b, a
	}

	return a < n && n < b
}

// Crossings lists every crossing of wires a and b, skipping the Origin.
// Crossings are ordered by segment of a, then by segment of b.
// Complexity: O(n·m) for n and m segments.
func Crossings(a, b Path) []Crossing {
	segsA, segsB := ToSegments(a), ToSegments(b)

	var out []Crossing
	stepsA := 0
	for i, sa := range segsA {
		stepsB := 0
		for j, sb := range segsB {
			if p, ok := Intersect(sa, sb); ok && p != Origin {
				out = append(out, Crossing{
					Point:    p,
					SegmentA: i,
					SegmentB: j,
					StepsA:   stepsA + sa.Source.Distance(p),
					StepsB:   stepsB + sb.Source.Distance(p),
				})
			}
			stepsB += sb.Len()
		}
		stepsA += sa.Len()
	}

	return out
}

// ClosestIntersection returns the smallest Manhattan distance from the
// Origin to any crossing of a and b. It reports false when the wires never
// cross. It is a Metric.
func ClosestIntersection(a, b Path) (int, bool) {
	return minOver(Crossings(a, b), func(c Crossing) int { return c.Point.Manhattan() })
}

// ShortestIntersection returns the fewest combined steps both wires walk to
// reach a common crossing. It reports false when the wires never cross.
// It is a Metric.
func ShortestIntersection(a, b Path) (int, bool) {
	return minOver(Crossings(a, b), Crossing.Steps)
}

func minOver(cs []Crossing, cost func(Crossing) int) (int, bool) {
	if len(cs) == 0 {
		return 0, false
	}
	best := cost(cs[0])
	for _, c := range cs[1:] {
		if v := cost(c); v < best {
			best = v
		}
	}

	return best, true
}
