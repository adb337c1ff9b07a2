package agent

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"
)

// ConfigurationError reports a solver configuration that names a
// valuation rule, choice rule, or solver type that does not exist.
type ConfigurationError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *ConfigurationError) Error() string {
	return e.Op + ": invalid configuration: " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ParameterError reports a solver parameter outside of its legal range
type ParameterError struct {
	Name  string
	Value float64
	Range r1.Interval
}

// Error satisifes the error interface
func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %v = %v must be in range [%v, %v]",
		e.Name, e.Value, e.Range.Min, e.Range.Max)
}

// IsConfigurationError returns whether or not an error reports an
// unrecognised rule or solver type
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsParameterError returns whether or not an error reports a parameter
// outside of its legal range
func IsParameterError(err error) bool {
	var paramErr *ParameterError
	return errors.As(err, &paramErr)
}

// ErrWarmStartLength is returned when the action values used to warm
// start a solver do not have one entry per transition record
var ErrWarmStartLength = errors.New("warm start length does not match " +
	"number of transition records")
