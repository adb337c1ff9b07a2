package valuation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomdp/agent"
)

// ErrUnknownRule is returned when a valuation rule name or value is not
// one of the rules implemented by this package
var ErrUnknownRule = errors.New("unknown valuation rule")

// Rule is a rule for summarising the action values of a state into a
// single state value
type Rule int

const (
	// Max values a state by its best action
	Max Rule = iota

	// Min values a state by its worst action
	Min

	// Softmax values a state by the expectation of its action values
	// under a softmax distribution with inverse temperature β
	Softmax

	// Pessimism values a state by the convex combination
	// w·max + (1-w)·min of its action values
	Pessimism
)

var ruleNames = map[Rule]string{
	Max:       "max",
	Min:       "min",
	Softmax:   "softmax",
	Pessimism: "pessimism",
}

// ParseRule returns the Rule with the given name. Names are case
// insensitive. An unknown name is reported as an
// *agent.ConfigurationError wrapping ErrUnknownRule.
func ParseRule(name string) (Rule, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for rule, ruleName := range ruleNames {
		if ruleName == name {
			return rule, nil
		}
	}
	return 0, &agent.ConfigurationError{
		Op:  "parseRule",
		Err: fmt.Errorf("%w: %q", ErrUnknownRule, name),
	}
}

// Valid returns whether r is a known rule
func (r Rule) Valid() bool {
	_, ok := ruleNames[r]
	return ok
}

// String implements the fmt.Stringer interface
func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// MarshalText implements the encoding.TextMarshaler interface
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (r *Rule) UnmarshalText(text []byte) error {
	rule, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}
