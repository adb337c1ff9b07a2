package agent

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gomdp/utils/floatutils"
)

var (
	// UnitInterval is the legal range of the discount factor, learning
	// rate, pessimism weight, and exploration rate
	UnitInterval = r1.Interval{Min: 0, Max: 1}

	// BetaInterval is the range of inverse temperatures that are
	// numerically well behaved. Values outside the range are legal for
	// solver parameters but saturate the softmax.
	BetaInterval = r1.Interval{Min: -50, Max: 50}
)

// CheckInterval returns a *ParameterError if value lies outside of
// interval
func CheckInterval(name string, value float64, interval r1.Interval) error {
	if !floatutils.InInterval(value, interval) {
		return &ParameterError{Name: name, Value: value, Range: interval}
	}
	return nil
}

// CheckUnit returns a *ParameterError if value lies outside of [0, 1]
func CheckUnit(name string, value float64) error {
	return CheckInterval(name, value, UnitInterval)
}

// WarnBeta logs a warning if the inverse temperature beta lies outside
// of BetaInterval. It returns whether a warning was logged. A nil
// logger logs to the default logger.
func WarnBeta(logger *slog.Logger, name string, beta float64) bool {
	if math.IsNaN(beta) || floatutils.InInterval(beta, BetaInterval) {
		return false
	}
	Logger(logger).Warn("parameter set very large", slog.String("param", name),
		slog.Float64("value", beta))
	return true
}

// CheckParams validates the parameters shared by all solvers: the
// discount factor gamma, the inverse temperature beta, and the
// pessimism weight w. Large values of beta are legal; use WarnBeta to
// report them.
func CheckParams(gamma, beta, w float64) error {
	if err := CheckUnit("gamma", gamma); err != nil {
		return err
	}
	if err := CheckUnit("w", w); err != nil {
		return err
	}
	if math.IsNaN(beta) {
		return &ParameterError{Name: "beta", Value: beta,
			Range: r1.Interval{Min: math.Inf(-1), Max: math.Inf(1)}}
	}
	return nil
}

// Logger returns logger, or the default logger if logger is nil
func Logger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
