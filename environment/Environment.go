// Package environment implements episodic simulation of tabular MDPs
package environment

import (
	"github.com/samuelfneumann/gomdp/timestep"
)

// Ender determines when an episode should end
type Ender interface {
	// End determines whether or not the current episode should be
	// ended. If so, End modifies the timestep so that it is the last
	// of its episode.
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment in which transition
// records are taken as actions
type Environment interface {
	// Reset starts a new episode
	Reset() timestep.TimeStep

	// Step takes the transition record with index record from the
	// current state, returning the next TimeStep and whether it ended
	// the episode
	Step(record int) (timestep.TimeStep, bool, error)

	// Actions returns the indices of the transition records available
	// in the current state
	Actions() []int
}
