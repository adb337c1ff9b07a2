// Package agent defines the solver interface shared by the model-based
// and model-free MDP solvers, along with the artifacts they produce and
// the configuration machinery used to construct them.
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/mdp"
)

// Solver computes the action values of every transition record of an
// MDP.
//
// A Solver never modifies the MDP it is given. The action values
// returned in the Result are copies and are not shared with the
// Solver.
type Solver interface {
	Fit(m *mdp.MDP) (*Result, error)
}

// WarmStarter is a Solver that can continue from existing action
// values instead of zero-initialised ones
type WarmStarter interface {
	Solver

	// FitFrom solves m starting from the action values q, which must
	// have one entry per transition record of m
	FitFrom(m *mdp.MDP, q mat.Vector) (*Result, error)
}
