// Package dp implements value iteration, a model-based solver that
// computes the action value of every transition record of an MDP by
// repeatedly sweeping over its full model
package dp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/valuation"
)

// ValueIteration solves MDPs by synchronous value iteration. Each
// sweep values every successor state from a snapshot of the previous
// sweep's action values, then recomputes every action value as the
// expected reward plus discounted successor value of its record.
type ValueIteration struct {
	config Config
	value  valuation.Func
	logger *slog.Logger
}

// New creates a new ValueIteration solver. A nil logger logs to the
// default logger.
func New(c Config, logger *slog.Logger) (*ValueIteration, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	logger = agent.Logger(logger)
	agent.WarnBeta(logger, "beta", c.Beta)

	value, err := valuation.New(c.Policy, c.Beta, c.W)
	if err != nil {
		return nil, &agent.ConfigurationError{Op: "new", Err: err}
	}

	return &ValueIteration{
		config: c,
		value:  value,
		logger: logger,
	}, nil
}

// Config returns the configuration of the solver
func (v *ValueIteration) Config() Config {
	return v.config
}

// Fit solves m starting from zero action values
func (v *ValueIteration) Fit(m *mdp.MDP) (*agent.Result, error) {
	return v.fit(m, make([]float64, m.NRecords())), nil
}

// FitFrom solves m starting from the action values q
func (v *ValueIteration) FitFrom(m *mdp.MDP, q mat.Vector) (*agent.Result,
	error) {
	if q.Len() != m.NRecords() {
		return nil, fmt.Errorf("fitFrom: %w: got %d, want %d",
			agent.ErrWarmStartLength, q.Len(), m.NRecords())
	}

	init := make([]float64, q.Len())
	for i := range init {
		init[i] = q.AtVec(i)
	}
	return v.fit(m, init), nil
}

// fit runs value iteration in place on q
func (v *ValueIteration) fit(m *mdp.MDP, q []float64) *agent.Result {
	records := m.Records()
	snapshot := make([]float64, len(q))
	successorValues := make([]float64, m.NStates())
	var values []float64

	delta := math.Inf(1)
	for iter := 1; iter <= v.config.MaxIter; iter++ {
		copy(snapshot, q)

		// Value every state from the snapshot so that all records of
		// this sweep bootstrap from the same values
		for s := range successorValues {
			values = agent.ActionValues(values, m, snapshot, s)
			successorValues[s] = v.value(values)
		}

		for i, r := range records {
			var total float64
			for j, next := range r.Successors {
				total += r.Probs[j] *
					(r.Rewards[j] + v.config.Gamma*successorValues[next])
			}
			q[i] = total
		}

		if len(q) > 0 {
			delta = floats.Distance(q, snapshot, math.Inf(1))
		} else {
			delta = 0
		}
		v.logger.Debug("value iteration sweep", slog.Int("iteration", iter),
			slog.Float64("delta", delta))

		if delta < v.config.Tol {
			return agent.NewResult(m, q, iter, agent.Converged)
		}
	}

	v.logger.Warn("value iteration: did not converge",
		slog.Int("maxIter", v.config.MaxIter), slog.Float64("delta", delta),
		slog.Float64("tol", v.config.Tol))
	return agent.NewResult(m, q, v.config.MaxIter, agent.MaxIterReached)
}
