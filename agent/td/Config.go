package td

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/policy"
	"github.com/samuelfneumann/gomdp/valuation"
)

// Default number of episodes and schedule values of the choice rules
const (
	DefaultEpisodes = 100
	DefaultEpsilon  = 0.05
	DefaultBeta     = 10.0
)

func init() {
	// Register ConfigList type so that it can be typed using
	// agent.TypedConfigList to help with serialization/deserialization.
	agent.Register(agent.TemporalDifference, ConfigList{})
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values. Empty fields keep the values of
// DefaultConfig.
type ConfigList struct {
	Policy    []valuation.Rule
	Eta       []float64
	Gamma     []float64
	Beta      []float64
	W         []float64
	Choice    []policy.Choice
	Schedule  [][]float64
	NSteps    []int
	Overwrite []bool
	Verbose   []bool
}

// NewConfigList returns a new ConfigList as an agent.TypedConfigList
// so that it can easily be JSON serialized/deserialized without
// knowing the underlying concrete type. Fields that are not swept over
// can be set on the returned list directly.
func NewConfigList(rules []valuation.Rule, eta, gamma []float64,
	choice []policy.Choice) agent.TypedConfigList {
	config := ConfigList{
		Policy: rules,
		Eta:    eta,
		Gamma:  gamma,
		Choice: choice,
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
	return agent.TemporalDifference
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return agent.ListLen(c)
}

// Config represents a configuration for the ModelFree solver
type Config struct {
	Policy valuation.Rule // Valuation of successor states

	Eta   float64 // Learning rate
	Gamma float64 // Discount factor
	Beta  float64 // Inverse temperature of the softmax valuation
	W     float64 // Weight on the best action of the pessimism valuation

	// Choice is the behaviour policy, and Schedule holds its parameter
	// for each training episode: ε for EGreedy, β for Softmax. A nil
	// Schedule uses DefaultSchedule(Choice).
	Choice   policy.Choice
	Schedule []float64

	NSteps    int  // Maximum number of steps per episode
	Overwrite bool // Discard the action values of previous fits
	Verbose   bool // Display a progress bar while training
}

// DefaultConfig returns the default configuration of the ModelFree
// solver
func DefaultConfig() Config {
	return Config{
		Policy:    valuation.Pessimism,
		Eta:       0.1,
		Gamma:     0.9,
		Beta:      10,
		W:         1,
		Choice:    policy.Softmax,
		Schedule:  nil,
		NSteps:    100,
		Overwrite: false,
	}
}

// DefaultSchedule returns the default schedule of a choice rule
func DefaultSchedule(choice policy.Choice) []float64 {
	value := DefaultBeta
	if choice == policy.EGreedy {
		value = DefaultEpsilon
	}

	schedule := make([]float64, DefaultEpisodes)
	for i := range schedule {
		schedule[i] = value
	}
	return schedule
}

// CreateSolver creates the solver from the Config
func (c Config) CreateSolver(seed uint64, logger *slog.Logger) (agent.Solver,
	error) {
	return New(c, seed, logger)
}

// ValidSolver returns whether the argument solver is a valid solver
// for construction with the Config
func (c Config) ValidSolver(s agent.Solver) bool {
	_, ok := s.(*ModelFree)
	return ok
}

// Validate ensures that the Config is valid. The schedule is validated
// when training starts, since a different one may be given to
// FitSchedule.
func (c Config) Validate() error {
	if !c.Policy.Valid() {
		return &agent.ConfigurationError{
			Op:  "validate",
			Err: fmt.Errorf("%w: %v", valuation.ErrUnknownRule, c.Policy),
		}
	}
	if !c.Choice.Valid() {
		return &agent.ConfigurationError{
			Op:  "validate",
			Err: fmt.Errorf("%w: %v", policy.ErrUnknownChoice, c.Choice),
		}
	}

	if err := agent.CheckParams(c.Gamma, c.Beta, c.W); err != nil {
		return err
	}
	if err := agent.CheckUnit("eta", c.Eta); err != nil {
		return err
	}

	if c.NSteps < 1 {
		return &agent.ParameterError{Name: "nSteps",
			Value: float64(c.NSteps),
			Range: r1.Interval{Min: 1, Max: math.Inf(1)}}
	}
	return nil
}

// Type returns the type of the solver constructed by the Config
func (c Config) Type() agent.Type {
	return agent.TemporalDifference
}

// validateSchedule returns a *agent.ParameterError if the schedule is
// empty or holds a value outside the legal range of choice
func validateSchedule(choice policy.Choice, schedule []float64) error {
	if len(schedule) == 0 {
		return &agent.ParameterError{Name: "schedule", Value: 0,
			Range: r1.Interval{Min: 1, Max: math.Inf(1)}}
	}

	for _, value := range schedule {
		err := agent.CheckInterval(choice.Param(), value, choice.Interval())
		if err != nil {
			return err
		}
	}
	return nil
}
