// Package policy implements the behaviour policies used to choose
// among the transition records of a state while learning from sampled
// episodes
package policy

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gomdp/agent"
)

// ErrUnknownChoice is returned when a choice rule name or value is not
// one of the rules implemented by this package
var ErrUnknownChoice = errors.New("unknown choice rule")

// Choice is a rule for choosing a transition record from the action
// values of a state. Each rule is controlled by a single parameter,
// which is scheduled per episode.
type Choice int

const (
	// EGreedy chooses the greedy record with probability 1-ε and a
	// uniformly random record otherwise. Its parameter is ε.
	EGreedy Choice = iota

	// Softmax chooses records with probability proportional to
	// exp(βQ). Its parameter is the inverse temperature β.
	Softmax
)

var choiceNames = map[Choice]string{
	EGreedy: "greedy",
	Softmax: "softmax",
}

// ParseChoice returns the Choice with the given name. Names are case
// insensitive. An unknown name is reported as an
// *agent.ConfigurationError wrapping ErrUnknownChoice.
func ParseChoice(name string) (Choice, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for choice, choiceName := range choiceNames {
		if choiceName == name {
			return choice, nil
		}
	}
	return 0, &agent.ConfigurationError{
		Op:  "parseChoice",
		Err: fmt.Errorf("%w: %q", ErrUnknownChoice, name),
	}
}

// Valid returns whether c is a known choice rule
func (c Choice) Valid() bool {
	_, ok := choiceNames[c]
	return ok
}

// Interval returns the legal range of the parameter of the choice rule
func (c Choice) Interval() r1.Interval {
	if c == Softmax {
		return agent.BetaInterval
	}
	return agent.UnitInterval
}

// Param returns the name of the parameter of the choice rule
func (c Choice) Param() string {
	if c == Softmax {
		return "beta"
	}
	return "epsilon"
}

// String implements the fmt.Stringer interface
func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// MarshalText implements the encoding.TextMarshaler interface
func (c Choice) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownChoice, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (c *Choice) UnmarshalText(text []byte) error {
	choice, err := ParseChoice(string(text))
	if err != nil {
		return err
	}
	*c = choice
	return nil
}
