package td

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/mdp"
)

// ErrNoResults is returned when Merge is given no results to merge
var ErrNoResults = errors.New("no results to merge")

// Merge averages the action values of results learned independently on
// m, for example by solvers with different seeds trained in parallel,
// into a single Result. The Iterations of the merged Result is the
// total number of episodes trained.
func Merge(m *mdp.MDP, results ...*agent.Result) (*agent.Result, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("merge: %w", ErrNoResults)
	}

	episodes := 0
	for i, r := range results {
		if r.Q.Len() != m.NRecords() {
			return nil, fmt.Errorf("merge: result %d has %d action values, "+
				"want %d", i, r.Q.Len(), m.NRecords())
		}
		episodes += r.Iterations
	}

	q := make([]float64, m.NRecords())
	column := make([]float64, len(results))
	for a := range q {
		for i, r := range results {
			column[i] = r.Q.AtVec(a)
		}
		q[a] = stat.Mean(column, nil)
	}

	return agent.NewResult(m, q, episodes, agent.Trained), nil
}
