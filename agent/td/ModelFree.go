// Package td implements model-free temporal difference learning of the
// action values of an MDP from sampled episodes
package td

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/policy"
	"github.com/samuelfneumann/gomdp/environment"
	"github.com/samuelfneumann/gomdp/experiment/checkpointer"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/timestep"
	"github.com/samuelfneumann/gomdp/utils/progressbar"
	"github.com/samuelfneumann/gomdp/valuation"
)

// ModelFree learns action values by temporal difference learning.
//
// Every episode starts in the start state of the MDP. In each state,
// the behaviour policy chooses one of the state's transition records,
// the MDP samples its successor, and the record's action value moves
// towards the reward plus the discounted value of the successor:
//
//	Q[a] += η (r + γ v(s') - Q[a])
//
// where v is the configured valuation rule applied to the action values
// of s'. Episodes end at terminal states, at states without records,
// or after NSteps steps.
//
// ModelFree is not safe for concurrent use. To train in parallel,
// create one ModelFree per goroutine and combine their results with
// Merge.
type ModelFree struct {
	config   Config
	value    valuation.Func
	selector *policy.Selector
	seed     rand.Source // Seed for random number generation
	logger   *slog.Logger

	// Action values learned by the latest fit
	q        []float64
	episodes int

	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer
	progress      io.Writer
}

// New creates a new ModelFree solver. Identical seeds produce identical
// results. A nil logger logs to the default logger.
func New(c Config, seed uint64, logger *slog.Logger) (*ModelFree, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	logger = agent.Logger(logger)
	agent.WarnBeta(logger, "beta", c.Beta)

	value, err := valuation.New(c.Policy, c.Beta, c.W)
	if err != nil {
		return nil, &agent.ConfigurationError{Op: "new", Err: err}
	}

	source := rand.NewSource(seed)
	selector, err := policy.NewSelector(c.Choice, source)
	if err != nil {
		return nil, &agent.ConfigurationError{Op: "new", Err: err}
	}

	return &ModelFree{
		config:   c,
		value:    value,
		selector: selector,
		seed:     source,
		logger:   logger,
		progress: os.Stderr,
	}, nil
}

// Config returns the configuration of the solver
func (t *ModelFree) Config() Config {
	return t.config
}

// Q returns a copy of the action values learned by the latest fit, or
// nil if the solver has not been fit
func (t *ModelFree) Q() *mat.VecDense {
	if len(t.q) == 0 {
		return nil
	}
	q := make([]float64, len(t.q))
	copy(q, t.q)
	return mat.NewVecDense(len(q), q)
}

// Register registers a Tracker with the solver so that every TimeStep
// of training is tracked
func (t *ModelFree) Register(tracker trackers.Tracker) {
	t.trackers = append(t.trackers, tracker)
}

// Checkpoint registers a Checkpointer with the solver so that the
// solver's action values are checkpointed during training
func (t *ModelFree) Checkpoint(c checkpointer.Checkpointer) {
	t.checkpointers = append(t.checkpointers, c)
}

// Fit trains on m using the configured schedule
func (t *ModelFree) Fit(m *mdp.MDP) (*agent.Result, error) {
	schedule := t.config.Schedule
	if schedule == nil {
		schedule = DefaultSchedule(t.config.Choice)
	}
	return t.FitSchedule(m, schedule)
}

// FitSchedule trains on m for one episode per schedule value, using
// the value as the parameter of the choice rule.
//
// Training continues from the action values of the previous fit unless
// the solver is configured to overwrite them, or they do not match the
// number of records of m. The whole schedule is validated before the
// first episode runs.
func (t *ModelFree) FitSchedule(m *mdp.MDP,
	schedule []float64) (*agent.Result, error) {
	if err := validateSchedule(t.config.Choice, schedule); err != nil {
		return nil, fmt.Errorf("fitSchedule: %w", err)
	}

	q := make([]float64, m.NRecords())
	if !t.config.Overwrite && len(t.q) == len(q) {
		copy(q, t.q)
	} else if !t.config.Overwrite && len(t.q) > 0 {
		t.logger.Debug("discarding action values of previous fit",
			slog.Int("have", len(t.q)), slog.Int("want", len(q)))
	}

	return t.train(m, q, schedule)
}

// FitFrom trains on m using the configured schedule, starting from the
// action values q
func (t *ModelFree) FitFrom(m *mdp.MDP, q mat.Vector) (*agent.Result,
	error) {
	if q.Len() != m.NRecords() {
		return nil, fmt.Errorf("fitFrom: %w: got %d, want %d",
			agent.ErrWarmStartLength, q.Len(), m.NRecords())
	}

	schedule := t.config.Schedule
	if schedule == nil {
		schedule = DefaultSchedule(t.config.Choice)
	}
	if err := validateSchedule(t.config.Choice, schedule); err != nil {
		return nil, fmt.Errorf("fitFrom: %w", err)
	}

	init := make([]float64, q.Len())
	for i := range init {
		init[i] = q.AtVec(i)
	}
	return t.train(m, init, schedule)
}

// train runs one episode per schedule value, updating q in place. If
// training fails, the action values and episode count of the previous
// fit are restored.
func (t *ModelFree) train(m *mdp.MDP, q []float64,
	schedule []float64) (*agent.Result, error) {
	env := environment.NewTabular(m, t.config.Gamma, t.seed,
		environment.NewStepLimit(t.config.NSteps))

	// Expose the values being learned to checkpointers
	prevQ, prevEpisodes := t.q, t.episodes
	t.q = q

	var bar *progressbar.ManualProgressBar
	if t.config.Verbose {
		bar = progressbar.NewManualProgressBar(t.progress, 50, len(schedule))
		defer bar.Close()
	}

	for episode, param := range schedule {
		t.episodes++
		steps, err := t.runEpisode(env, q, param)
		if err != nil {
			t.q, t.episodes = prevQ, prevEpisodes
			return nil, fmt.Errorf("train: episode %d: %w", episode, err)
		}
		t.logger.Debug("temporal difference episode",
			slog.Int("episode", episode), slog.Int("steps", steps))

		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	return agent.NewResult(m, q, len(schedule), agent.Trained), nil
}

// runEpisode runs a single episode, returning its number of steps
func (t *ModelFree) runEpisode(env *environment.Tabular, q []float64,
	param float64) (int, error) {
	m := env.MDP()
	var values []float64

	step := env.Reset()
	if err := t.track(step); err != nil {
		return 0, err
	}

	for !step.Last() {
		// Select a record of the current state
		actions := env.Actions()
		values = agent.ActionValues(values, m, q, step.State)
		i, err := t.selector.Select(values, param)
		if err != nil {
			return step.Number, err
		}
		a := actions[i]

		// Observe next state and reward
		next, _, err := env.Step(a)
		if err != nil {
			return step.Number, err
		}

		// Update the action value towards the bootstrapped target
		values = agent.ActionValues(values, m, q, next.State)
		target := next.Reward + t.config.Gamma*t.value(values)
		q[a] += t.config.Eta * (target - q[a])

		if err := t.track(next); err != nil {
			return next.Number, err
		}
		step = next
	}

	return step.Number, nil
}

// track passes a TimeStep to every registered Tracker and Checkpointer
func (t *ModelFree) track(step timestep.TimeStep) error {
	for _, tracker := range t.trackers {
		tracker.Track(step)
	}
	for _, c := range t.checkpointers {
		if err := c.Checkpoint(step); err != nil {
			return fmt.Errorf("checkpoint: %w", err)
		}
	}
	return nil
}

// checkpoint is the gob representation of a ModelFree
type checkpoint struct {
	Q        []float64
	Episodes int
}

// GobEncode implements the gob.GobEncoder interface. The learned action
// values and the number of episodes trained are encoded.
func (t *ModelFree) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(checkpoint{Q: t.q, Episodes: t.episodes}); err != nil {
		return nil, fmt.Errorf("gobEncode: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface. Decoding restores
// the learned action values, so that the next fit continues from them
// unless the solver is configured to overwrite them.
func (t *ModelFree) GobDecode(in []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(in))

	var c checkpoint
	if err := dec.Decode(&c); err != nil {
		return fmt.Errorf("gobDecode: %w", err)
	}

	t.q = c.Q
	t.episodes = c.Episodes
	return nil
}

// Episodes returns the number of episodes trained over all fits
func (t *ModelFree) Episodes() int {
	return t.episodes
}
