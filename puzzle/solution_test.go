package puzzle_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2019/orbit"
	"github.com/katalvlaran/aoc2019/puzzle"
	"github.com/katalvlaran/aoc2019/wire"
)

const (
	wireSample  = "R75,D30,R83,U83,L12,D49,R71,U7,L72\nU62,R66,U55,R34,D71,R55,D58,R83\n"
	orbitSample = "COM)B\nB)C\nC)D\nD)E\nE)F\nB)G\nG)H\nD)I\nE)J\nJ)K\nK)L\nK)YOU\nI)SAN\n"
)

func TestSolutions_Registered(t *testing.T) {
	var names, inputs []string
	for _, s := range puzzle.Solutions() {
		names = append(names, s.Name)
		inputs = append(inputs, s.DefaultInput)
		assert.NotEmpty(t, s.Description)
		assert.NotNil(t, s.Solve)
	}
	assert.Equal(t, []string{"day3-1", "day3-2", "day6-1", "day6-2"}, names)
	assert.Equal(t, []string{
		"inputs/day_3_1.txt", "inputs/day_3_1.txt",
		"inputs/day_6_1.txt", "inputs/day_6_1.txt",
	}, inputs)
}

func TestLookup(t *testing.T) {
	s, err := puzzle.Lookup("day6-2")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Day)
	assert.Equal(t, 2, s.Part)

	_, err = puzzle.Lookup("day9-9")
	assert.ErrorIs(t, err, puzzle.ErrUnknownSolution)
}

func TestSolve(t *testing.T) {
	cases := []struct {
		name string
		text string
		want puzzle.Result
	}{
		{"day3-1", wireSample, puzzle.Result{Value: 159, Found: true}},
		{"day3-2", wireSample, puzzle.Result{Value: 610, Found: true}},
		{"day3-1", "R5,U5\nU5,R5\n", puzzle.Result{Reason: "error: paths do not overlap"}},
		{"day3-1", "R5,L10\nU5,D10\n", puzzle.Result{Reason: "error: paths do not overlap"}},
		{"day3-2", "R5,L10\nU5,D10\n", puzzle.Result{Reason: "error: paths do not overlap"}},
		{"day6-1", orbitSample, puzzle.Result{Value: 54, Found: true}},
		{"day6-2", orbitSample, puzzle.Result{Value: 4, Found: true}},
		{"day6-2", "COM)B\nB)YOU\n", puzzle.Result{Reason: "there is no route from YOU to SAN"}},
		{"day6-1", "", puzzle.Result{Value: 0, Found: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := puzzle.Lookup(tc.name)
			require.NoError(t, err)
			got, err := s.Solve(tc.text, puzzle.DefaultParams())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"day3-1", "R8,U5\nU7,X6\n", wire.ErrUnknownDirection},
		{"day3-2", "R8,U5\nU7,R6", puzzle.ErrFormat},
		{"day3-2", "R8,Ux\nU7,R6\n", wire.ErrBadMagnitude},
		{"day6-1", "COM)B\nB-C\n", orbit.ErrEdgeFormat},
		{"day6-2", "COM)B", puzzle.ErrFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := puzzle.Lookup(tc.name)
			require.NoError(t, err)
			_, err = s.Solve(tc.text, puzzle.DefaultParams())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_CustomParams(t *testing.T) {
	s, err := puzzle.Lookup("day6-2")
	require.NoError(t, err)

	got, err := s.Solve(orbitSample, puzzle.Params{Root: "COM", From: "L", To: "H"})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Result{Value: 6, Found: true}, got)

	s, err = puzzle.Lookup("day6-1")
	require.NoError(t, err)
	got, err = s.Solve(orbitSample, puzzle.Params{Root: "D"})
	require.NoError(t, err)
	assert.Equal(t, 19, got.Value)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "42", puzzle.Result{Value: 42, Found: true}.String())
	assert.Equal(t, "error: paths do not overlap", puzzle.Result{Reason: "error: paths do not overlap"}.String())
}

func TestRunner(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day_3_1.txt")
	require.NoError(t, os.WriteFile(path, []byte(wireSample), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := puzzle.NewRunner(nil, logger, puzzle.DefaultParams())

	s, err := puzzle.Lookup("day3-2")
	require.NoError(t, err)
	res, err := r.Run(context.Background(), s, path)
	require.NoError(t, err)
	assert.Equal(t, 610, res.Value)

	out := logs.String()
	assert.Contains(t, out, `"solution":"day3-2"`)
	assert.Contains(t, out, `"fingerprint":`)
	assert.Contains(t, out, `"msg":"solved"`)
}

func TestRunner_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("COM)B\nB)C)D\n"), 0o644))

	r := puzzle.NewRunner(nil, nil, puzzle.DefaultParams())
	s, err := puzzle.Lookup("day6-1")
	require.NoError(t, err)

	_, err = r.Run(context.Background(), s, filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, puzzle.ErrInput)

	_, err = r.Run(context.Background(), s, bad)
	assert.ErrorIs(t, err, orbit.ErrEdgeFormat)
	assert.Contains(t, err.Error(), "day6-1")
	assert.Contains(t, err.Error(), "line 1")
}
