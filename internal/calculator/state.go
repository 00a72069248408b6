package calculator

import (
	"errors"
	"fmt"
)

// ErrInvalidDigit is returned by InputDigit for anything other than 0-9 or '.'.
var ErrInvalidDigit = errors.New("invalid digit")

// Phase is either Idle or Pending. The left operand and the operator of a
// pending operation only exist together.
type Phase interface {
	phase()
}

// Idle means no binary operation is waiting for its right operand.
type Idle struct{}

// Pending holds the left operand and operator chosen before the right
// operand is typed.
type Pending struct {
	Operand   float64
	Operation Operator
}

func (Idle) phase()    {}
func (Pending) phase() {}

// State is the running calculation behind a keypad. It is a value: every
// operation returns the next State and leaves the receiver untouched, so no
// half-applied transition is ever observable.
//
// The zero value is equivalent to NewState().
type State struct {
	display          string
	phase            Phase
	awaitingNewEntry bool
}

// NewState returns the cleared state: display "0", nothing pending.
func NewState() State {
	return State{display: "0", phase: Idle{}}
}

// Display returns the text currently shown.
func (s State) Display() string {
	if s.display == "" {
		return "0"
	}
	return s.display
}

// Phase returns Idle{} or the Pending operation.
func (s State) Phase() Phase {
	if s.phase == nil {
		return Idle{}
	}
	return s.phase
}

// AwaitingNewEntry reports whether the next digit starts a fresh operand.
func (s State) AwaitingNewEntry() bool {
	return s.awaitingNewEntry
}

// InputDigit types d, one of '0'-'9' or '.'. A leading "0" is replaced
// rather than extended. Repeated decimal points are accepted as typed.
func (s State) InputDigit(d rune) (State, error) {
	if !IsDigitKey(d) {
		return s, fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}

	display := s.Display()
	switch {
	case s.awaitingNewEntry:
		s.display = string(d)
		s.awaitingNewEntry = false
	case display == "0":
		s.display = string(d)
	default:
		s.display = display + string(d)
	}
	return s, nil
}

// InputOperation selects op. With an operation already pending it is
// evaluated first against the displayed value, giving strict left-to-right
// evaluation with no precedence: 2 + 3 * 4 is (2+3)*4.
func (s State) InputOperation(op Operator) (State, error) {
	if !op.Valid() {
		return s, fmt.Errorf("%w: %q", ErrInvalidOperator, string(op))
	}

	current := ParseNumber(s.Display())

	switch p := s.Phase().(type) {
	case Pending:
		result := Calculate(p.Operand, current, p.Operation)
		s.display = FormatNumber(result)
		s.phase = Pending{Operand: result, Operation: op}
	default:
		s.phase = Pending{Operand: current, Operation: op}
	}

	s.awaitingNewEntry = true
	return s, nil
}

// Equals resolves the pending operation. Without one it returns s unchanged.
func (s State) Equals() State {
	p, ok := s.Phase().(Pending)
	if !ok {
		return s
	}

	result := Calculate(p.Operand, ParseNumber(s.Display()), p.Operation)
	s.display = FormatNumber(result)
	s.phase = Idle{}
	s.awaitingNewEntry = true
	return s
}

// Clear returns the default state regardless of s.
func (s State) Clear() State {
	return NewState()
}

// IsDigitKey reports whether r may be passed to InputDigit.
func IsDigitKey(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}
