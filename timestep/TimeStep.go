// Package timestep implements timesteps of the interaction between a
// solver and a simulated MDP
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes why an episode ended
type EndType int

const (
	// NotEnded is the EndType of every TimeStep that is not Last
	NotEnded EndType = iota

	// TerminalStateReached means the episode entered a terminal state
	TerminalStateReached

	// Timeout means the episode ran out of steps
	Timeout

	// NoRecords means the episode entered a non-terminal state that
	// has no transition records, so no further step can be taken
	NoRecords
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	case NoRecords:
		return "NoRecords"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in an episode
type TimeStep struct {
	StepType StepType
	EndType  EndType
	Reward   float64
	Discount float64

	// State is the state entered on this step
	State int

	// Record is the index of the transition record taken to enter
	// State, or -1 on the first step of an episode
	Record int

	Number int
}

// New returns a new TimeStep
func New(t StepType, r, d float64, state, record, n int) TimeStep {
	return TimeStep{
		StepType: t,
		Reward:   r,
		Discount: d,
		State:    state,
		Record:   record,
		Number:   n,
	}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd makes the TimeStep the last of its episode, ending for reason
// e
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.EndType = e
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %v  |  Reward:  %.2f  |  " +
		"Discount: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Reward, t.Discount,
		t.Number)
}
