package mdp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// choiceWorld returns the adjacency and reward matrices of a 4-state
// world: 0 -> 1, then 1 -> 2 (+1) or 1 -> 3 (-1), with 2 and 3
// absorbing.
func choiceWorld() (T, R *mat.Dense) {
	nan := math.NaN()
	T = mat.NewDense(4, 4, []float64{
		nan, 1, nan, nan,
		nan, nan, 1, 1,
		nan, nan, 1, nan,
		nan, nan, nan, 1,
	})
	R = mat.NewDense(4, 4, []float64{
		nan, 0, nan, nan,
		nan, nan, 1, -1,
		nan, nan, 0, nan,
		nan, nan, nan, 0,
	})
	return T, R
}

func TestNewGraphWorld(t *testing.T) {
	T, R := choiceWorld()
	m, err := NewGraphWorld(T, R, 0, []int{2, 3}, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NStates())
	assert.Equal(t, 5, m.NRecords())
	assert.Equal(t, []int{0, 1}, m.Viable())
	assert.Equal(t, []int{2, 3}, m.Terminal())

	var states, successors []int
	var rewards, probs []float64
	for _, record := range m.Records() {
		states = append(states, record.State)
		successors = append(successors, record.Successors...)
		rewards = append(rewards, record.Rewards...)
		probs = append(probs, record.Probs...)
	}

	assert.Equal(t, []int{0, 1, 1, 2, 3}, states)
	assert.Equal(t, []int{1, 2, 3, 3, 2, 2, 3}, successors)
	assert.Equal(t, []float64{0, 1, -1, -1, 1, 0, 0}, rewards)
	assert.Equal(t, []float64{1, 1, 0, 1, 0, 1, 1}, probs)
}

func TestNewGraphWorldSlippage(t *testing.T) {
	nan := math.NaN()
	T := mat.NewDense(4, 4, []float64{
		nan, 1, 1, 1,
		nan, 1, nan, nan,
		nan, nan, 1, nan,
		nan, nan, nan, 1,
	})
	R := mat.NewDense(4, 4, []float64{
		nan, 1, 2, 3,
		nan, 0, nan, nan,
		nan, nan, 0, nan,
		nan, nan, nan, 0,
	})

	m, err := NewGraphWorld(T, R, 0, []int{1, 2, 3}, 0.3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, m.Actions(0))

	rotations := [][]int{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}}
	for k, want := range rotations {
		record := m.Record(k)
		assert.Equal(t, want, record.Successors)
		assert.InDelta(t, 1.0, floats.Sum(record.Probs), ProbabilityTolerance)
		assert.InDelta(t, 0.7, record.Probs[0], 1e-12)
		assert.InDelta(t, 0.15, record.Probs[1], 1e-12)
		for j, s := range record.Successors {
			assert.Equal(t, float64(s), record.Rewards[j])
		}
	}
}

func TestNewGraphWorldErrors(t *testing.T) {
	T, R := choiceWorld()

	_, err := NewGraphWorld(T, R, 0, []int{2, 3}, 1.5)
	assert.True(t, IsMalformed(err))

	_, err = NewGraphWorld(mat.NewDense(2, 3, nil), R, 0, nil, 0)
	assert.True(t, IsMalformed(err))

	_, err = NewGraphWorld(T, mat.NewDense(3, 3, nil), 0, nil, 0)
	assert.True(t, IsMalformed(err))
}

func TestGridToAdjacency(t *testing.T) {
	nan := math.NaN()
	grid := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		0, nan, 0,
	})

	adj, err := GridToAdjacency(grid, []int{4})
	require.NoError(t, err)

	r, c := adj.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 5, c)

	// Cells enumerate as (0,0)=0 (0,1)=1 (0,2)=2 (1,0)=3 (1,2)=4
	adjacent := map[[2]int]bool{
		{0, 1}: true, {1, 0}: true, {1, 2}: true, {2, 1}: true,
		{0, 3}: true, {3, 0}: true, {2, 4}: true, {4, 4}: true,
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if adjacent[[2]int{i, j}] {
				assert.Equal(t, 1.0, adj.At(i, j), "(%d, %d)", i, j)
			} else {
				assert.True(t, math.IsNaN(adj.At(i, j)), "(%d, %d)", i, j)
			}
		}
	}

	_, err = GridToAdjacency(grid, []int{5})
	assert.True(t, IsMalformed(err))
}

func TestGridWorldRoundTrip(t *testing.T) {
	grid := mat.NewDense(3, 3, nil)
	terminal := []int{8}

	T, err := GridToAdjacency(grid, terminal)
	require.NoError(t, err)

	R := mat.NewDense(9, 9, nil)
	for i := 0; i < 9; i++ {
		R.Set(i, 8, 10)
	}
	R.MulElem(R, T)

	m, err := NewGraphWorld(T, R, 0, terminal, 0.1)
	require.NoError(t, err)

	for _, record := range m.Records() {
		assert.InDelta(t, 1.0, floats.Sum(record.Probs), ProbabilityTolerance)
		for _, s := range record.Successors {
			assert.True(t, s >= 0 && s < m.NStates())
		}
	}
	require.Len(t, m.Actions(8), 1)
	assert.Equal(t, []int{8}, m.Record(m.Actions(8)[0]).Successors)
}
