package puzzle

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/aoc2019/orbit"
	"github.com/katalvlaran/aoc2019/wire"
)

// Params carries the identifiers the orbit solutions search for.
type Params struct {
	Root string // tree root
	From string // first traveller
	To   string // second traveller
}

// DefaultParams returns the identifiers used by the published puzzle.
func DefaultParams() Params {
	return Params{Root: orbit.DefaultRoot, From: orbit.DefaultFrom, To: orbit.DefaultTo}
}

// Result is the outcome of one Solution. When Found is false, Reason is the
// line printed instead of a value; wire solutions phrase it as an error,
// orbit solutions as a plain statement.
type Result struct {
	Value  int
	Found  bool
	Reason string
}

// String returns the value, or the reason when there is none.
func (r Result) String() string {
	if !r.Found {
		return r.Reason
	}

	return strconv.Itoa(r.Value)
}

// Solution binds one puzzle part to the algorithm that answers it.
type Solution struct {
	Day, Part    int
	Name         string
	Description  string
	DefaultInput string

	// Solve turns the raw input text into a Result.
	Solve func(text string, p Params) (Result, error)
}

// WireSolution answers a wire puzzle by folding the crossings of the two
// input wires with metric.
func WireSolution(day, part int, desc string, metric wire.Metric) Solution {
	return Solution{
		Day:          day,
		Part:         part,
		Name:         name(day, part),
		Description:  desc,
		DefaultInput: defaultInput(day),
		Solve: func(text string, _ Params) (Result, error) {
			la, lb, err := SplitWireInput(text)
			if err != nil {
				return Result{}, err
			}
			a, err := wire.ParsePath(la)
			if err != nil {
				return Result{}, fmt.Errorf("line 0: %w", err)
			}
			b, err := wire.ParsePath(lb)
			if err != nil {
				return Result{}, fmt.Errorf("line 1: %w", err)
			}
			v, ok := metric(a, b)
			if !ok {
				return Result{Reason: "error: paths do not overlap"}, nil
			}

			return Result{Value: v, Found: true}, nil
		},
	}
}

// OrbitQuery answers a question about an orbit map.
type OrbitQuery func(g *orbit.Graph, p Params) (int, bool)

// OrbitSolution answers an orbit puzzle with query.
func OrbitSolution(day, part int, desc string, query OrbitQuery) Solution {
	return Solution{
		Day:          day,
		Part:         part,
		Name:         name(day, part),
		Description:  desc,
		DefaultInput: defaultInput(day),
		Solve: func(text string, p Params) (Result, error) {
			lines, err := SplitOrbitInput(text)
			if err != nil {
				return Result{}, err
			}
			g, err := orbit.Parse(lines)
			if err != nil {
				return Result{}, err
			}
			v, ok := query(g, p)
			if !ok {
				return Result{Reason: fmt.Sprintf("there is no route from %s to %s", p.From, p.To)}, nil
			}

			return Result{Value: v, Found: true}, nil
		},
	}
}

// TotalOrbits counts every direct and indirect orbit below p.Root.
func TotalOrbits(g *orbit.Graph, p Params) (int, bool) {
	return orbit.TotalOrbitCount(g, p.Root), true
}

// Transfers counts the orbital transfers between p.From and p.To.
func Transfers(g *orbit.Graph, p Params) (int, bool) {
	return orbit.MinimumTransfers(g, p.Root, p.From, p.To)
}

var registry = map[string]Solution{}

func register(s Solution) {
	if _, dup := registry[s.Name]; dup {
		panic("puzzle: duplicate solution " + s.Name)
	}
	registry[s.Name] = s
}

func init() {
	register(WireSolution(3, 1, "distance from the origin to the closest wire crossing", wire.ClosestIntersection))
	register(WireSolution(3, 2, "fewest combined steps to a wire crossing", wire.ShortestIntersection))
	register(OrbitSolution(6, 1, "total number of direct and indirect orbits", TotalOrbits))
	register(OrbitSolution(6, 2, "minimum orbital transfers between two objects", Transfers))
}

// Solutions lists every registered Solution ordered by day, then part.
func Solutions() []Solution {
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Part < out[j].Part
	})

	return out
}

// Lookup returns the Solution registered under name, e.g. "day3-1".
func Lookup(name string) (Solution, error) {
	s, ok := registry[name]
	if !ok {
		return Solution{}, fmt.Errorf("%w: %q", ErrUnknownSolution, name)
	}

	return s, nil
}

func name(day, part int) string { return fmt.Sprintf("day%d-%d", day, part) }

// defaultInput is where a day's input lives; both parts share part 1's file.
func defaultInput(day int) string { return fmt.Sprintf("inputs/day_%d_1.txt", day) }
