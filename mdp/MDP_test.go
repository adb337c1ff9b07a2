package mdp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceRecords() []Transition {
	return []Transition{
		{State: 0, Successors: []int{1}, Rewards: []float64{0}, Probs: []float64{1}},
		{State: 1, Successors: []int{2, 3}, Rewards: []float64{1, -1}, Probs: []float64{1, 0}},
		{State: 1, Successors: []int{3, 2}, Rewards: []float64{-1, 1}, Probs: []float64{1, 0}},
		{State: 2, Successors: []int{2}, Rewards: []float64{0}, Probs: []float64{1}},
		{State: 3, Successors: []int{3}, Rewards: []float64{0}, Probs: []float64{1}},
	}
}

func TestNew(t *testing.T) {
	m, err := New(4, 0, []int{2, 3}, choiceRecords())
	require.NoError(t, err)

	assert.Equal(t, 0, m.Start())
	assert.Equal(t, []int{0}, m.Actions(0))
	assert.Equal(t, []int{1, 2}, m.Actions(1))
	assert.Equal(t, []int{3}, m.Actions(2))
	assert.True(t, m.IsTerminal(3))
	assert.False(t, m.IsTerminal(1))
	assert.True(t, m.RawRecord(0).Deterministic())
	assert.Contains(t, m.String(), "Records: 5")
}

func TestNewCopiesRecords(t *testing.T) {
	records := choiceRecords()
	m, err := New(4, 0, []int{2, 3}, records)
	require.NoError(t, err)

	records[1].Successors[0] = 3
	assert.Equal(t, 2, m.RawRecord(1).Successors[0])

	copied := m.Record(1)
	copied.Rewards[0] = 100
	assert.Equal(t, 1.0, m.RawRecord(1).Rewards[0])
}

func TestNewInvalid(t *testing.T) {
	tests := map[string]func(r []Transition) (int, int, []int){
		"no states": func(r []Transition) (int, int, []int) {
			return 0, 0, nil
		},
		"start out of range": func(r []Transition) (int, int, []int) {
			return 4, 4, []int{2, 3}
		},
		"terminal out of range": func(r []Transition) (int, int, []int) {
			return 4, 0, []int{2, 9}
		},
		"successor out of range": func(r []Transition) (int, int, []int) {
			r[1].Successors[1] = 4
			return 4, 0, []int{2, 3}
		},
		"state out of range": func(r []Transition) (int, int, []int) {
			r[4].State = -1
			return 4, 0, []int{2, 3}
		},
		"length mismatch": func(r []Transition) (int, int, []int) {
			r[1].Rewards = r[1].Rewards[:1]
			return 4, 0, []int{2, 3}
		},
		"empty successors": func(r []Transition) (int, int, []int) {
			r[0] = Transition{State: 0}
			return 4, 0, []int{2, 3}
		},
		"negative probability": func(r []Transition) (int, int, []int) {
			r[1].Probs = []float64{1.5, -0.5}
			return 4, 0, []int{2, 3}
		},
		"probabilities do not sum to one": func(r []Transition) (int, int, []int) {
			r[1].Probs = []float64{0.5, 0.4}
			return 4, 0, []int{2, 3}
		},
		"nan reward": func(r []Transition) (int, int, []int) {
			r[2].Rewards[0] = math.NaN()
			return 4, 0, []int{2, 3}
		},
		"start without actions": func(r []Transition) (int, int, []int) {
			return 4, 0, []int{2, 3}
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			records := choiceRecords()
			nStates, start, terminal := mutate(records)
			if name == "start without actions" {
				records = records[1:]
			}

			_, err := New(nStates, start, terminal, records)
			require.Error(t, err)
			assert.True(t, IsMalformed(err))
		})
	}
}

func TestNewProbabilityError(t *testing.T) {
	records := choiceRecords()
	records[1].Probs = []float64{0.5, 0.4}

	_, err := New(4, 0, []int{2, 3}, records)
	assert.True(t, errors.Is(err, errBadProbability))
	assert.Contains(t, err.Error(), "record 1")
}

func TestTerminalStartNeedsNoActions(t *testing.T) {
	m, err := New(1, 0, []int{0}, nil)
	require.NoError(t, err)
	assert.Empty(t, m.Actions(0))
	assert.Empty(t, m.Viable())
}
