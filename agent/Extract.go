package agent

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/utils/floatutils"
	"github.com/samuelfneumann/gomdp/utils/intutils"
	"github.com/samuelfneumann/gomdp/utils/matutils"
)

// ActionValues fills dst with the action values in q of the records
// of state s and returns it. If dst is too small, a new slice is
// allocated.
func ActionValues(dst []float64, m *mdp.MDP, q []float64, s int) []float64 {
	actions := m.Actions(s)
	if cap(dst) < len(actions) {
		dst = make([]float64, len(actions))
	}
	dst = dst[:len(actions)]

	for i, a := range actions {
		dst[i] = q[a]
	}
	return dst
}

// GreedyAction returns the index of the transition record of state s
// with the largest action value, taking the first record on ties. It
// returns -1 if s has no records.
func GreedyAction(m *mdp.MDP, q []float64, s int) int {
	actions := m.Actions(s)
	if len(actions) == 0 {
		return -1
	}
	return actions[floatutils.Argmax(ActionValues(nil, m, q, s))]
}

// StateValues returns the maximum action value of every state. States
// without transition records have value NaN.
func StateValues(m *mdp.MDP, q []float64) *mat.VecDense {
	v := matutils.VecFull(m.NStates(), math.NaN())

	for s := 0; s < m.NStates(); s++ {
		if a := GreedyAction(m, q, s); a >= 0 {
			v.SetVec(s, q[a])
		}
	}
	return v
}

// ExtractPolicy returns the greedy state trace through an MDP with
// action values q.
//
// Starting from the start state, the trace repeatedly follows the
// intended destination of the state's greedy record. It stops at a
// terminal state, at a state without records, or before revisiting a
// state already in the trace, so the trace never repeats a state.
func ExtractPolicy(m *mdp.MDP, q []float64) []int {
	policy := []int{m.Start()}

	for {
		s := policy[len(policy)-1]
		if m.IsTerminal(s) {
			break
		}

		a := GreedyAction(m, q, s)
		if a < 0 {
			break
		}

		next := m.RawRecord(a).Successors[0]
		if intutils.Contains(policy, next) {
			break
		}
		policy = append(policy, next)
	}

	return policy
}
