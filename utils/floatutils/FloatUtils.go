// Package floatutils provides utilities for working with floats
package floatutils

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r1"
)

// ErrEmpty is returned when an operation requires at least one value
// but was given none.
var ErrEmpty = errors.New("empty input")

// InInterval returns whether value lies in the closed interval
// [interval.Min, interval.Max]. NaN is never in an interval.
func InInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value <= interval.Max
}

// Argmax returns the index of the maximum value in values. If multiple
// equal max values exist, only the first one is returned. Argmax
// panics if values is empty.
func Argmax(values []float64) int {
	max, idx := values[0], 0

	for i := 1; i < len(values); i++ {
		if values[i] > max {
			max = values[i]
			idx = i
		}
	}
	return idx
}

// Softmax returns the softmax distribution of values. The maximum is
// subtracted before exponentiating so that large inputs do not
// overflow. Constant inputs produce a uniform distribution.
func Softmax(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}

	probs := make([]float64, len(values))
	copy(probs, values)
	floats.AddConst(-floats.Max(probs), probs)

	for i := range probs {
		probs[i] = math.Exp(probs[i])
	}
	floats.Scale(1/floats.Sum(probs), probs)

	return probs, nil
}
