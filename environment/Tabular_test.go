package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/timestep"
)

// slipperyChain returns a chain 0 -> 1 -> 2 where the step from 0
// slips back to 0 with probability 0.5
func slipperyChain(t *testing.T) *mdp.MDP {
	records := []mdp.Transition{
		{State: 0, Successors: []int{1, 0}, Rewards: []float64{1, -1}, Probs: []float64{0.5, 0.5}},
		{State: 1, Successors: []int{2}, Rewards: []float64{10}, Probs: []float64{1}},
		{State: 1, Successors: []int{3}, Rewards: []float64{0}, Probs: []float64{1}},
	}
	m, err := mdp.New(4, 0, []int{2}, records)
	require.NoError(t, err)
	return m
}

func TestTabularEpisode(t *testing.T) {
	env := NewTabular(slipperyChain(t), 0.9, rand.NewSource(1))

	step := env.Reset()
	assert.True(t, step.First())
	assert.Equal(t, 0, step.State)
	assert.Equal(t, []int{0}, env.Actions())

	for step.State == 0 {
		var err error
		step, _, err = env.Step(0)
		require.NoError(t, err)
	}
	assert.Equal(t, 1.0, step.Reward)
	assert.Equal(t, 0, step.Record)

	step, last, err := env.Step(1)
	require.NoError(t, err)
	assert.True(t, last)
	assert.Equal(t, 10.0, step.Reward)
	assert.Equal(t, timestep.TerminalStateReached, step.EndType)

	_, _, err = env.Step(1)
	assert.Error(t, err)
}

func TestTabularInvalidRecord(t *testing.T) {
	env := NewTabular(slipperyChain(t), 0.9, rand.NewSource(1))

	_, _, err := env.Step(1)
	assert.Error(t, err)
	cur := env.Current()
	assert.True(t, cur.First())
}

func TestTabularNoRecords(t *testing.T) {
	m := slipperyChain(t)
	env := NewTabular(m, 0.9, rand.NewSource(3))

	step := env.Current()
	for step.State != 1 {
		step = env.Reset()
		step, _, _ = env.Step(0)
	}

	step, last, err := env.Step(2)
	require.NoError(t, err)
	assert.True(t, last)
	assert.Equal(t, timestep.NoRecords, step.EndType)
}

func TestTabularStepLimit(t *testing.T) {
	records := []mdp.Transition{
		{State: 0, Successors: []int{0}, Rewards: []float64{1}, Probs: []float64{1}},
	}
	m, err := mdp.New(1, 0, nil, records)
	require.NoError(t, err)

	env := NewTabular(m, 1, rand.NewSource(1), NewStepLimit(3))
	env.Reset()

	steps := 0
	for {
		step, last, err := env.Step(0)
		require.NoError(t, err)
		steps++
		if last {
			assert.Equal(t, timestep.Timeout, step.EndType)
			break
		}
	}
	assert.Equal(t, 3, steps)

	// A zero step limit ends episodes before the first step
	env = NewTabular(m, 1, rand.NewSource(1), NewStepLimit(0))
	first := env.Reset()
	assert.True(t, first.Last())
}

func TestTabularSlippage(t *testing.T) {
	env := NewTabular(slipperyChain(t), 0.9, rand.NewSource(11))

	const n = 10000
	slipped := 0
	for i := 0; i < n; i++ {
		env.Reset()
		step, _, err := env.Step(0)
		require.NoError(t, err)
		if step.State == 0 {
			slipped++
		}
	}
	assert.InDelta(t, 0.5, float64(slipped)/n, 0.03)
}

var _ Environment = (*Tabular)(nil)
