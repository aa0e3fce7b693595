package wire

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMoves splits a comma-separated move list into Moves.
// Each token is a direction letter followed by an unsigned decimal magnitude.
// The first bad token aborts parsing; the error wraps ErrEmptyMove,
// ErrUnknownDirection or ErrBadMagnitude and names the token's index.
func ParseMoves(moves string) ([]Move, error) {
	tokens := strings.Split(moves, ",")
	out := make([]Move, 0, len(tokens))
	for i, tok := range tokens {
		m, err := parseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d (%q): %w", i, tok, err)
		}
		out = append(out, m)
	}

	return out, nil
}

func parseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, ErrEmptyMove
	}
	dir, err := ParseDirection(tok[0])
	if err != nil {
		return Move{}, err
	}
	// 31 bits keeps every magnitude representable as a non-negative int32.
	mag, err := strconv.ParseUint(tok[1:], 10, 31)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMagnitude, tok[1:])
	}

	return Move{Dir: dir, Magnitude: int(mag)}, nil
}

// ParsePath interprets a move list as the absolute points a wire visits.
// The returned Path starts at the Origin and holds one more point than there
// are moves.
//
// Example:
//
//	p, _ := ParsePath("R8,U5")
//	// p == Path{{0, 0}, {8, 0}, {8, 5}}
func ParsePath(moves string) (Path, error) {
	ms, err := ParseMoves(moves)
	if err != nil {
		return nil, err
	}

	path := make(Path, 1, len(ms)+1)
	path[0] = Origin
	for _, m := range ms {
		path = append(path, path[len(path)-1].Add(m.Displacement()))
	}

	return path, nil
}

// ToSegments pairs up consecutive points of p. A path of N points yields
// N-1 segments, each oriented in the direction of travel.
func ToSegments(p Path) []Segment {
	if len(p) < 2 {
		return nil
	}
	segs := make([]Segment, len(p)-1)
	for i := range segs {
		segs[i] = Segment{Source: p[i], Target: p[i+1]}
	}

	return segs
}
