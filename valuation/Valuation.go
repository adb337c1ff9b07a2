// Package valuation implements rules that summarise the action values
// of a state into a single state value.
//
// Solvers use a valuation rule to bootstrap the value of successor
// states. The rule is chosen once, when a solver is constructed, by
// calling New with one of the Rule constants.
package valuation

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gomdp/utils/floatutils"
)

// ErrDegenerateInput is returned when a softmax distribution is
// requested over an empty set of action values
var ErrDegenerateInput = errors.New("degenerate input: no action values")

// Func maps the action values of a state to the value of that state.
// A state without actions has value 0.
type Func func(values []float64) float64

// New returns the valuation function for rule. The inverse temperature
// beta is used only by Softmax and the pessimism weight w only by
// Pessimism.
func New(rule Rule, beta, w float64) (Func, error) {
	switch rule {
	case Max:
		return maxValue, nil

	case Min:
		return minValue, nil

	case Softmax:
		return func(values []float64) float64 {
			if len(values) == 0 {
				return 0
			}
			v, _ := Expectation(values, beta)
			return v
		}, nil

	case Pessimism:
		return func(values []float64) float64 {
			if len(values) == 0 {
				return 0
			}
			return Pessimistic(values, w)
		}, nil
	}

	return nil, fmt.Errorf("new: %w: %v", ErrUnknownRule, rule)
}

func maxValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

func minValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Min(values)
}

// Expectation returns the expected action value under the softmax
// distribution softmax(values·beta). As beta → 0 this approaches the
// mean of values, as beta → ∞ the maximum, and as beta → -∞ the
// minimum.
func Expectation(values []float64, beta float64) (float64, error) {
	scaled := make([]float64, len(values))
	floats.ScaleTo(scaled, beta, values)

	probs, err := floatutils.Softmax(scaled)
	if err != nil {
		return 0, ErrDegenerateInput
	}
	return floats.Dot(values, probs), nil
}

// Pessimistic returns w·max(values) + (1-w)·min(values)
func Pessimistic(values []float64, w float64) float64 {
	return w*floats.Max(values) + (1-w)*floats.Min(values)
}
