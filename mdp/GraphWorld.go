package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NewGraphWorld creates an MDP from a graph adjacency matrix T and a
// one-step reward matrix R, both of shape (n states, n states).
//
// T[s, s'] is NaN when s' cannot be reached from s in one step and any
// other value otherwise. R[s, s'] is the reward for moving from s to
// s' and is only read where T is not NaN.
//
// Every state receives one transition record per reachable neighbour,
// with that neighbour as the intended destination. The remaining
// neighbours follow it in cyclic order, so that record k of state s
// lists the neighbours rotated k places. The intended destination is
// reached with probability 1-epsilon, and the epsilon slippage mass is
// shared equally among the alternatives.
func NewGraphWorld(T, R mat.Matrix, start int, terminal []int,
	epsilon float64) (*MDP, error) {
	rows, cols := T.Dims()
	if rows != cols {
		return nil, newError("newGraphWorld", "adjacency matrix must be "+
			"square, have (%d, %d)", rows, cols)
	}
	if rRows, rCols := R.Dims(); rRows != rows || rCols != cols {
		return nil, newError("newGraphWorld", "reward matrix shape (%d, %d) "+
			"does not match adjacency shape (%d, %d)", rRows, rCols, rows, cols)
	}
	if !(epsilon >= 0 && epsilon <= 1) {
		return nil, newError("newGraphWorld", "epsilon must be in [0, 1], "+
			"have %v", epsilon)
	}

	var records []Transition
	for s := 0; s < rows; s++ {
		// Observe the neighbours of s
		var neighbours []int
		for j := 0; j < cols; j++ {
			if !math.IsNaN(T.At(s, j)) {
				neighbours = append(neighbours, j)
			}
		}
		n := len(neighbours)

		// Rotate the neighbour list once per action
		for k := 0; k < n; k++ {
			successors := make([]int, n)
			rewards := make([]float64, n)
			for j := range successors {
				successors[j] = neighbours[((j-k)%n+n)%n]
				rewards[j] = R.At(s, successors[j])
			}

			records = append(records, Transition{
				State:      s,
				Successors: successors,
				Rewards:    rewards,
				Probs:      slippage(n, epsilon),
			})
		}
	}

	m, err := New(rows, start, terminal, records)
	if err != nil {
		return nil, fmt.Errorf("newGraphWorld: %w", err)
	}
	return m, nil
}

// slippage returns the outcome distribution of an action with n
// possible successors
func slippage(n int, epsilon float64) []float64 {
	probs := make([]float64, n)
	if n == 1 {
		probs[0] = 1.0
		return probs
	}

	probs[0] = 1.0 - epsilon
	for i := 1; i < n; i++ {
		probs[i] = epsilon / float64(n-1)
	}
	return probs
}

// GridToAdjacency converts a grid world into a graph adjacency matrix
// suitable for NewGraphWorld.
//
// Grid cells holding NaN are not occupiable and are excluded. The
// remaining cells are enumerated in row-major order, and two cells are
// adjacent when they share an edge. Terminal states, indexed by the
// enumeration of occupiable cells, lose their outgoing edges and become
// self-transitioning.
func GridToAdjacency(grid mat.Matrix, terminal []int) (*mat.Dense, error) {
	rows, cols := grid.Dims()

	// Identify coordinates of viable cells
	var coords [][2]int
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !math.IsNaN(grid.At(i, j)) {
				coords = append(coords, [2]int{i, j})
			}
		}
	}
	n := len(coords)
	if n == 0 {
		return nil, &Error{Op: "gridToAdjacency", Err: errNoStates}
	}

	// Compute the one-step adjacency matrix
	adj := mat.NewDense(n, n, nil)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			dr := coords[a][0] - coords[b][0]
			dc := coords[a][1] - coords[b][1]
			if dr*dr+dc*dc == 1 {
				adj.Set(a, b, 1.0)
			} else {
				adj.Set(a, b, math.NaN())
			}
		}
	}

	// Make terminal states absorbing
	for _, s := range terminal {
		if s < 0 || s >= n {
			return nil, newError("gridToAdjacency", "terminal state %d out "+
				"of range [0, %d)", s, n)
		}
		for j := 0; j < n; j++ {
			adj.Set(s, j, math.NaN())
		}
	}
	for _, s := range terminal {
		adj.Set(s, s, 1.0)
	}

	return adj, nil
}
