package dp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/valuation"
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.ValueIteration, ConfigList{})
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values. Empty fields keep the values of
// DefaultConfig.
type ConfigList struct {
	Policy  []valuation.Rule
	Gamma   []float64
	Beta    []float64
	W       []float64
	Tol     []float64
	MaxIter []int
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type.
func NewConfigList(policy []valuation.Rule, gamma, beta, w, tol []float64,
	maxIter []int) agent.TypedConfigList {
	config := ConfigList{
		Policy:  policy,
		Gamma:   gamma,
		Beta:    beta,
		W:       w,
		Tol:     tol,
		MaxIter: maxIter,
	}
	return agent.NewTypedConfigList(config)
}

// Config returns the default Config, whose fields are overwritten by
// the values stored in the list
func (c ConfigList) Config() agent.Config {
	return DefaultConfig()
}

// Type returns the type of solver that can be constructed by Config's
// stored by the list
func (c ConfigList) Type() agent.Type {
	return agent.ValueIteration
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return agent.ListLen(c)
}

// Config represents a configuration for the ValueIteration solver
type Config struct {
	Policy valuation.Rule // Valuation of successor states

	Gamma float64 // Discount factor
	Beta  float64 // Inverse temperature of the softmax valuation
	W     float64 // Weight on the best action of the pessimism valuation

	Tol     float64 // Stop once no action value changes by Tol or more
	MaxIter int
}

// DefaultConfig returns the default configuration of value iteration
func DefaultConfig() Config {
	return Config{
		Policy:  valuation.Pessimism,
		Gamma:   0.9,
		Beta:    10,
		W:       1,
		Tol:     1e-4,
		MaxIter: 100,
	}
}

// CreateSolver creates the solver from the Config. Value iteration is
// deterministic, so seed is ignored.
func (c Config) CreateSolver(_ uint64, logger *slog.Logger) (agent.Solver,
	error) {
	return New(c, logger)
}

// ValidSolver returns whether the argument solver is a valid solver
// for construction with the Config
func (c Config) ValidSolver(s agent.Solver) bool {
	_, ok := s.(*ValueIteration)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !c.Policy.Valid() {
		return &agent.ConfigurationError{
			Op:  "validate",
			Err: fmt.Errorf("%w: %v", valuation.ErrUnknownRule, c.Policy),
		}
	}

	if err := agent.CheckParams(c.Gamma, c.Beta, c.W); err != nil {
		return err
	}

	if err := agent.CheckInterval("tol", c.Tol,
		r1.Interval{Min: 0, Max: math.Inf(1)}); err != nil {
		return err
	}

	if c.MaxIter < 1 {
		return &agent.ParameterError{Name: "maxIter",
			Value: float64(c.MaxIter),
			Range: r1.Interval{Min: 1, Max: math.Inf(1)}}
	}
	return nil
}

// Type returns the type of the solver constructed by the Config
func (c Config) Type() agent.Type {
	return agent.ValueIteration
}
