// Package mdp implements tabular Markov Decision Processes described by
// transition records.
//
// Each transition record describes the outcome distribution of taking
// one action in one state: the intended destination is the first
// successor, and every other successor is reached through slippage
// with the probability stored alongside it. An MDP is built once
// through New, which validates the records and indexes them by state,
// and is never modified afterwards.
package mdp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ProbabilityTolerance is the maximum absolute difference from 1.0
// allowed for the sum of a transition record's probabilities
const ProbabilityTolerance float64 = 1e-9

// Transition is a single transition record: the outcome distribution
// of one action taken in State. Successors, Rewards, and Probs are
// aligned index-wise.
type Transition struct {
	State      int
	Successors []int
	Rewards    []float64
	Probs      []float64
}

// clone returns a deep copy of the Transition
func (t Transition) clone() Transition {
	return Transition{
		State:      t.State,
		Successors: append([]int(nil), t.Successors...),
		Rewards:    append([]float64(nil), t.Rewards...),
		Probs:      append([]float64(nil), t.Probs...),
	}
}

// Deterministic returns whether the record always leads to its
// intended destination
func (t Transition) Deterministic() bool {
	return t.Probs[0] == 1.0
}

// MDP is an immutable tabular Markov Decision Process
type MDP struct {
	nStates  int
	start    int
	terminal []bool
	records  []Transition

	// actions[s] holds the indices of the records whose State is s, in
	// record order
	actions [][]int
}

// New creates a new MDP with nStates states, starting state start,
// absorbing states terminal, and transition records records. The
// records are copied, so the caller may reuse its slices afterwards.
func New(nStates, start int, terminal []int,
	records []Transition) (*MDP, error) {
	if nStates <= 0 {
		return nil, &Error{Op: "new", Err: errNoStates}
	}
	if start < 0 || start >= nStates {
		return nil, newError("new", "start state %d out of range [0, %d)",
			start, nStates)
	}

	m := &MDP{
		nStates:  nStates,
		start:    start,
		terminal: make([]bool, nStates),
		records:  make([]Transition, len(records)),
		actions:  make([][]int, nStates),
	}

	for _, s := range terminal {
		if s < 0 || s >= nStates {
			return nil, newError("new", "terminal state %d out of range "+
				"[0, %d)", s, nStates)
		}
		m.terminal[s] = true
	}

	for i, record := range records {
		if err := validate(i, record, nStates); err != nil {
			return nil, err
		}
		m.records[i] = record.clone()
		m.actions[record.State] = append(m.actions[record.State], i)
	}

	if !m.terminal[start] && len(m.actions[start]) == 0 {
		return nil, &Error{Op: "new", Err: errNoActions}
	}

	return m, nil
}

// validate checks that a transition record describes a valid
// probability distribution over in-range states
func validate(i int, t Transition, nStates int) error {
	op := fmt.Sprintf("record %d", i)

	if t.State < 0 || t.State >= nStates {
		return newError(op, "state %d out of range [0, %d)", t.State,
			nStates)
	}
	if len(t.Successors) == 0 {
		return &Error{Op: op, Err: errNoSuccessors}
	}
	if len(t.Rewards) != len(t.Successors) ||
		len(t.Probs) != len(t.Successors) {
		return newError(op, "successors (%d), rewards (%d), and "+
			"probabilities (%d) must have equal lengths", len(t.Successors),
			len(t.Rewards), len(t.Probs))
	}

	for _, s := range t.Successors {
		if s < 0 || s >= nStates {
			return newError(op, "successor %d out of range [0, %d)", s,
				nStates)
		}
	}
	for _, r := range t.Rewards {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return newError(op, "reward %v is not finite", r)
		}
	}
	for _, p := range t.Probs {
		if !(p >= 0) {
			return &Error{Op: op, Err: fmt.Errorf("%w: %v", errBadProbability,
				p)}
		}
	}
	if sum := floats.Sum(t.Probs); math.Abs(sum-1.0) > ProbabilityTolerance {
		return &Error{Op: op, Err: fmt.Errorf("%w: probabilities sum to %v",
			errBadProbability, sum)}
	}

	return nil
}

// NStates returns the number of states in the MDP
func (m *MDP) NStates() int {
	return m.nStates
}

// NRecords returns the number of transition records in the MDP
func (m *MDP) NRecords() int {
	return len(m.records)
}

// Start returns the starting state
func (m *MDP) Start() int {
	return m.start
}

// IsTerminal returns whether state s is absorbing
func (m *MDP) IsTerminal(s int) bool {
	return m.terminal[s]
}

// Terminal returns the terminal states in increasing order
func (m *MDP) Terminal() []int {
	var terminal []int
	for s, t := range m.terminal {
		if t {
			terminal = append(terminal, s)
		}
	}
	return terminal
}

// Viable returns the non-terminal states in increasing order
func (m *MDP) Viable() []int {
	viable := make([]int, 0, m.nStates)
	for s, t := range m.terminal {
		if !t {
			viable = append(viable, s)
		}
	}
	return viable
}

// Actions returns the indices of the transition records of state s in
// record order. The returned slice must not be modified.
func (m *MDP) Actions(s int) []int {
	return m.actions[s]
}

// Record returns a copy of transition record i
func (m *MDP) Record(i int) Transition {
	return m.records[i].clone()
}

// RawRecord returns transition record i without copying. The slices of
// the returned Transition must not be modified.
func (m *MDP) RawRecord(i int) Transition {
	return m.records[i]
}

// Records returns a copy of every transition record
func (m *MDP) Records() []Transition {
	records := make([]Transition, len(m.records))
	for i := range m.records {
		records[i] = m.records[i].clone()
	}
	return records
}

// String implements the fmt.Stringer interface
func (m *MDP) String() string {
	str := "MDP | States: %d  |  Records: %d  |  Start: %d  |  Terminal: %v"
	return fmt.Sprintf(str, m.nStates, len(m.records), m.start, m.Terminal())
}
