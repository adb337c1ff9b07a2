package mdp

import (
	"errors"
	"fmt"
)

// Error reports a malformed MDP. Op names the construction step that
// failed.
type Error struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *Error) Error() string {
	return "mdp: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

var (
	errNoStates       = errors.New("an MDP must have at least one state")
	errNoSuccessors   = errors.New("transition has no successors")
	errBadProbability = errors.New("invalid transition probability")
	errNoActions      = errors.New("non-terminal start state has no transitions")
)

func newError(op string, format string, args ...interface{}) error {
	return &Error{Op: op, Err: fmt.Errorf(format, args...)}
}

// IsMalformed returns whether err reports a malformed MDP
func IsMalformed(err error) bool {
	var mdpErr *Error
	return errors.As(err, &mdpErr)
}
