// Package counter is a minimal reducer-style counter. State is owned and
// passed around by the caller; there is no package-level store.
package counter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAction = errors.New("unknown action")

type Action string

const (
	Increment Action = "increment"
	Decrement Action = "decrement"
)

type State struct {
	Count int `json:"count"`
}

// ParseAction accepts "increment"/"decrement" or the button labels "+"/"-".
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increment", "inc", "+":
		return Increment, nil
	case "decrement", "dec", "-":
		return Decrement, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Reduce returns the state after a. An unknown action leaves s as it was.
func Reduce(s State, a Action) (State, error) {
	switch a {
	case Increment:
		s.Count++
	case Decrement:
		s.Count--
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}
	return s, nil
}

// Dispatch folds actions over s, stopping at the first unknown one.
func Dispatch(s State, actions ...Action) (State, error) {
	for i, a := range actions {
		next, err := Reduce(s, a)
		if err != nil {
			return s, fmt.Errorf("action %d: %w", i, err)
		}
		s = next
	}
	return s, nil
}
