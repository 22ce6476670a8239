package tsp_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/cvrp/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plane is a Distancer over 2D points.
type plane [][2]float64

func (p plane) Dist(i, j int) float64 {
	return math.Hypot(p[i][0]-p[j][0], p[i][1]-p[j][1])
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	// Depot at a corner; visiting 1, 3, 2 crosses the square's diagonals.
	p := plane{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	stops, cost, err := tsp.TwoOpt(p, []int{1, 3, 2}, tsp.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4.0, cost)
	assert.ElementsMatch(t, []int{1, 2, 3}, stops)
}

func TestTwoOpt_NeverWorse(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	p := make(plane, 40)
	for i := range p {
		p[i] = [2]float64{rng.Float64() * 100, rng.Float64() * 100}
	}
	stops := make([]int, 0, 39)
	for i := 1; i < 40; i++ {
		stops = append(stops, i)
	}
	rng.Shuffle(len(stops), func(i, j int) { stops[i], stops[j] = stops[j], stops[i] })
	before := tsp.TourCost(p, tsp.Close(0, stops))
	orig := append([]int(nil), stops...)

	out, cost, err := tsp.TwoOpt(p, stops, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, orig, stops, "input untouched")
	assert.ElementsMatch(t, orig, out)
	assert.LessOrEqual(t, cost, before)
	assert.Equal(t, tsp.TourCost(p, tsp.Close(0, out)), cost)

	// A second run from a local optimum changes nothing.
	again, cost2, err := tsp.TwoOpt(p, out, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, cost, cost2)
}

func TestTwoOpt_ShortRoutes(t *testing.T) {
	p := plane{{0, 0}, {3, 4}, {6, 8}}
	out, cost, err := tsp.TwoOpt(p, []int{2, 1}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, out)
	assert.Equal(t, 20.0, cost)

	out, cost, err = tsp.TwoOpt(p, nil, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, cost)
}

func TestTwoOpt_MaxIters(t *testing.T) {
	p := plane{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {2, 0}, {2, 1}}
	opts := tsp.DefaultOptions()
	opts.MaxIters = 1
	_, capped, err := tsp.TwoOpt(p, []int{2, 4, 1, 5, 3}, opts)
	require.NoError(t, err)
	_, full, err := tsp.TwoOpt(p, []int{2, 4, 1, 5, 3}, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.LessOrEqual(t, full, capped)
}

func TestTwoOpt_Errors(t *testing.T) {
	p := plane{{0, 0}, {1, 0}, {1, 1}}
	_, _, err := tsp.TwoOpt(p, []int{1, 0, 2}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, _, err = tsp.TwoOpt(p, []int{1, 2, 1}, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, _, err = tsp.TwoOpt(p, []int{1, 2}, tsp.Options{Eps: -1})
	assert.ErrorIs(t, err, tsp.ErrNegativeEps)
}
