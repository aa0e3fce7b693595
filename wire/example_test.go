package wire_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2019/wire"
)

// ExampleCrossings walks the small sample wires:
//
//	...........
//	.+-----+...
//	.|.....|...
//	.|..+--X-+.
//	.|..|..|.|.
//	.|.-X--+.|.
//	.|..|....|.
//	.|.......|.
//	.o-------+.
//	...........
//
// They cross twice; (3,3) is nearest the origin, (6,5) is reached first.
func ExampleCrossings() {
	a, _ := wire.ParsePath("R8,U5,L5,D3")
	b, _ := wire.ParsePath("U7,R6,D4,L4")

	for _, c := range wire.Crossings(a, b) {
		fmt.Printf("crossing %s: distance %d, steps %d\n", c.Point, c.Point.Manhattan(), c.Steps())
	}

	closest, _ := wire.ClosestIntersection(a, b)
	shortest, _ := wire.ShortestIntersection(a, b)
	fmt.Println("closest:", closest)
	fmt.Println("shortest:", shortest)

	// Output:
	// crossing (6, 5): distance 11, steps 30
	// crossing (3, 3): distance 6, steps 40
	// closest: 6
	// shortest: 30
}

// ExampleMetric selects the folding rule at run time.
func ExampleMetric() {
	a, _ := wire.ParsePath("R75,D30,R83,U83,L12,D49,R71,U7,L72")
	b, _ := wire.ParsePath("U62,R66,U55,R34,D71,R55,D58,R83")

	for _, m := range []struct {
		name   string
		metric wire.Metric
	}{
		{"closest", wire.ClosestIntersection},
		{"shortest", wire.ShortestIntersection},
	} {
		v, ok := m.metric(a, b)
		fmt.Println(m.name, v, ok)
	}

	// Output:
	// closest 159 true
	// shortest 610 true
}
