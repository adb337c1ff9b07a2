package environment

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/timestep"
	"github.com/samuelfneumann/gomdp/utils/intutils"
)

// Tabular simulates episodes of a tabular MDP. Every episode begins in
// the MDP's start state. Taking a transition record leads to one of the
// record's successors, sampled according to the record's
// probabilities.
//
// An episode ends when it enters a terminal state, when it enters a
// state without transition records, or when one of the additional
// Enders of the environment ends it.
type Tabular struct {
	m        *mdp.MDP
	enders   []Ender
	discount float64
	seed     rand.Source // Seed for random number generation

	current timestep.TimeStep
}

// NewTabular returns a new Tabular environment simulating m. Rewards
// are discounted by discount. Successors are sampled using source,
// which must not be nil.
func NewTabular(m *mdp.MDP, discount float64, source rand.Source,
	enders ...Ender) *Tabular {
	builtin := []Ender{
		NewFunctionEnder(m.IsTerminal, timestep.TerminalStateReached),
		NewFunctionEnder(func(s int) bool { return len(m.Actions(s)) == 0 },
			timestep.NoRecords),
	}

	t := &Tabular{
		m:        m,
		enders:   append(builtin, enders...),
		discount: discount,
		seed:     source,
	}
	t.Reset()
	return t
}

// MDP returns the MDP simulated by the environment
func (t *Tabular) MDP() *mdp.MDP {
	return t.m
}

// Current returns the latest TimeStep of the current episode
func (t *Tabular) Current() timestep.TimeStep {
	return t.current
}

// Actions returns the indices of the transition records available in
// the current state
func (t *Tabular) Actions() []int {
	return t.m.Actions(t.current.State)
}

// Reset starts a new episode in the start state
func (t *Tabular) Reset() timestep.TimeStep {
	t.current = timestep.New(timestep.First, 0, t.discount, t.m.Start(),
		-1, 0)
	t.end(&t.current)
	return t.current
}

// Step takes the transition record with index record, which must
// belong to the current state
func (t *Tabular) Step(record int) (timestep.TimeStep, bool, error) {
	if t.current.Last() {
		return t.current, true, fmt.Errorf("step: episode has ended (%v)",
			t.current.EndType)
	}
	if !intutils.Contains(t.Actions(), record) {
		return t.current, false, fmt.Errorf("step: record %d is not "+
			"available in state %d", record, t.current.State)
	}

	r := t.m.RawRecord(record)

	// Realise slippage by sampling the successor
	i := 0
	if !r.Deterministic() {
		dist := distuv.NewCategorical(r.Probs, t.seed)
		i = int(dist.Rand())
	}

	t.current = timestep.New(timestep.Mid, r.Rewards[i], t.discount,
		r.Successors[i], record, t.current.Number+1)
	last := t.end(&t.current)

	return t.current, last, nil
}

// end runs the enders of the environment on step, stopping at the
// first that ends the episode
func (t *Tabular) end(step *timestep.TimeStep) bool {
	for _, ender := range t.enders {
		if ender.End(step) {
			return true
		}
	}
	return false
}
