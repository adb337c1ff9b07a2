package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gomdp/utils/floatutils"
	"github.com/samuelfneumann/gomdp/valuation"
)

// Selector chooses among the transition records of a state by sampling
// from the distribution that its choice rule places over their action
// values
type Selector struct {
	choice Choice
	seed   rand.Source // Seed for random number generation
}

// NewSelector returns a new Selector for the given choice rule, which
// samples using source
func NewSelector(choice Choice, source rand.Source) (*Selector, error) {
	if !choice.Valid() {
		return nil, fmt.Errorf("newSelector: %w: %d", ErrUnknownChoice,
			int(choice))
	}
	return &Selector{choice: choice, seed: source}, nil
}

// Choice returns the choice rule of the Selector
func (s *Selector) Choice() Choice {
	return s.choice
}

// Probabilities returns the probability with which each of the action
// values would be chosen, given the choice rule's parameter param
func (s *Selector) Probabilities(values []float64,
	param float64) ([]float64, error) {
	if s.choice == Softmax {
		return SoftmaxProbabilities(values, param)
	}
	return EGreedyProbabilities(values, param)
}

// Select samples the index of one of values
func (s *Selector) Select(values []float64, param float64) (int, error) {
	probs, err := s.Probabilities(values, param)
	if err != nil {
		return 0, fmt.Errorf("select: %w", err)
	}

	// Construct a categorical distribution over the records using
	// their probabilities
	dist := distuv.NewCategorical(probs, s.seed)
	return int(dist.Rand()), nil
}

// EGreedyProbabilities returns the ε-greedy distribution over values:
// every value receives probability ε/n, and the first maximal value
// additionally receives 1-ε
func EGreedyProbabilities(values []float64, epsilon float64) ([]float64,
	error) {
	if len(values) == 0 {
		return nil, valuation.ErrDegenerateInput
	}

	// Calculate the ε probability of choosing any action at random
	prob := epsilon / float64(len(values))
	probs := make([]float64, len(values))
	for i := range probs {
		probs[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	probs[floatutils.Argmax(values)] += 1.0 - epsilon
	return probs, nil
}

// SoftmaxProbabilities returns softmax(β·values)
func SoftmaxProbabilities(values []float64, beta float64) ([]float64,
	error) {
	if len(values) == 0 {
		return nil, valuation.ErrDegenerateInput
	}

	scaled := make([]float64, len(values))
	floats.ScaleTo(scaled, beta, values)
	return floatutils.Softmax(scaled)
}
