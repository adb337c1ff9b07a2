package agent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/utils/matutils"
)

// Status reports how a solver finished
type Status int

const (
	// Converged means value iteration met its tolerance
	Converged Status = iota

	// MaxIterReached means value iteration used its full iteration
	// budget without meeting its tolerance. The result is the best
	// estimate found within the budget.
	MaxIterReached

	// Trained means temporal difference learning completed every
	// episode of its schedule
	Trained
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterReached:
		return "MaxIterReached"
	case Trained:
		return "Trained"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result holds the artifacts of a solved MDP
type Result struct {
	// Q holds one action value per transition record
	Q *mat.VecDense

	// V holds the best action value of each state. States without
	// transition records hold NaN.
	V *mat.VecDense

	// Pi is the greedy state trace from the start state
	Pi []int

	// Iterations is the number of sweeps (value iteration) or episodes
	// (temporal difference learning) performed
	Iterations int

	Status Status
}

// NewResult derives the state values and greedy policy of an MDP from
// its action values q. The returned Result does not alias q.
func NewResult(m *mdp.MDP, q []float64, iterations int,
	status Status) *Result {
	qCopy := make([]float64, len(q))
	copy(qCopy, q)

	return &Result{
		Q:          newVec(qCopy),
		V:          StateValues(m, q),
		Pi:         ExtractPolicy(m, q),
		Iterations: iterations,
		Status:     status,
	}
}

// Converged returns whether the solver met its stopping criterion
func (r *Result) Converged() bool {
	return r.Status != MaxIterReached
}

// String implements the fmt.Stringer interface
func (r *Result) String() string {
	str := "Result | Status: %v  |  Iterations: %d  |  Pi: %v\nQ: %v\nV: %v"
	return fmt.Sprintf(str, r.Status, r.Iterations, r.Pi,
		matutils.Format(r.Q.T()), matutils.Format(r.V.T()))
}
