// Package wire finds the places where two wires, laid out on an infinite
// integer grid as Manhattan paths, cross each other.
//
// What:
//
//   - ParsePath turns a move list such as "R8,U5,L5,D3" into the sequence of
//     absolute points visited, starting at the Origin.
//   - ToSegments splits a Path into axis-aligned Segments in travel order.
//   - Intersect reports the crossing point of a vertical and a horizontal
//     Segment, if any.
//   - ClosestIntersection and ShortestIntersection fold every crossing of two
//     paths into a single scalar: Manhattan distance from the origin, or the
//     combined number of steps both wires walk to reach the crossing.
//
// Crossing rules:
//
//   - Only perpendicular segments cross. Parallel segments never report a
//     crossing, even when collinear and overlapping.
//   - Betweenness is strict on both axes: a crossing that lands exactly on an
//     endpoint of either segment (a turning point of a wire) is not reported.
//   - The origin, shared by every path, is never a crossing.
//
// Complexity:
//
//   - ParsePath:            O(n) for n moves.
//   - Closest/Shortest:     O(n·m) for paths of n and m segments.
//
// Errors:
//
//   - ErrEmptyMove          a move token is empty (e.g. "R8,,U5").
//   - ErrUnknownDirection   a move does not start with U, D, L or R.
//   - ErrBadMagnitude       a move's magnitude is not an unsigned integer.
package wire
