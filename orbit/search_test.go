package orbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Absorb(t *testing.T) {
	cases := []struct {
		name   string
		acc    search
		child  search
		expect search
	}{
		{"nothing below", search{}, search{}, search{}},
		{"first sighting gains a hop", search{}, found(targetA, 0), found(targetA, 1)},
		{"other target completes the pair", found(targetA, 3), found(targetB, 1), foundBoth(3, 2)},
		{"pair order follows targets", found(targetB, 3), found(targetA, 1), foundBoth(2, 3)},
		{"repeat sighting replaces", found(targetA, 3), found(targetA, 0), found(targetA, 1)},
		{"empty child keeps pair", foundBoth(4, 2), search{}, foundBoth(4, 2)},
		{"sighting updates pair", foundBoth(4, 2), found(targetB, 6), foundBoth(4, 7)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.acc.absorb(tc.child))
		})
	}
}

// A child's complete pair reaches the top unchanged; no hop is added on the
// way up.
func TestTransferWalker_ShortCircuit(t *testing.T) {
	g, err := BuildGraph([]Edge{
		{Parent: "COM", Child: "A"},
		{Parent: "A", Child: "B"},
		{Parent: "B", Child: "X"},
		{Parent: "B", Child: "Y"},
		{Parent: "X", Child: "YOU"},
		{Parent: "Y", Child: "SAN"},
	})
	require.NoError(t, err)
	w := &transferWalker{a: "YOU", b: "SAN"}
	assert.Equal(t, foundBoth(2, 2), w.run(g, "COM"))
	assert.Empty(t, w.stack)
}
