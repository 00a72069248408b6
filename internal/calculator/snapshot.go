package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSnapshot is returned by Restore for snapshots no sequence of
// keypad input could have produced.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// ErrDisplayTooLong marks a display that will not fit in a snapshot.
var ErrDisplayTooLong = errors.New("display too long")

const maxDisplayLen = 256

// checkDisplayLen reports ErrDisplayTooLong for displays Restore would refuse.
func checkDisplayLen(d string) error {
	if len(d) > maxDisplayLen {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrDisplayTooLong, len(d), maxDisplayLen)
	}
	return nil
}

// Snapshot is the exported, JSON-friendly form of a State. Callers that keep
// a calculation between requests hold on to it and hand it back.
type Snapshot struct {
	Display          string           `json:"display"`
	Pending          *PendingSnapshot `json:"pending,omitempty"`
	AwaitingNewEntry bool             `json:"awaiting_new_entry"`
}

// PendingSnapshot mirrors Pending.
type PendingSnapshot struct {
	Operand   Number   `json:"operand"`
	Operation Operator `json:"operation"`
}

// Snapshot exports s.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Display:          s.Display(),
		AwaitingNewEntry: s.awaitingNewEntry,
	}
	if p, ok := s.Phase().(Pending); ok {
		snap.Pending = &PendingSnapshot{
			Operand:   Number(p.Operand),
			Operation: p.Operation,
		}
	}
	return snap
}

// Restore rebuilds a State from snap. An empty display restores as "0".
func Restore(snap Snapshot) (State, error) {
	if err := validateDisplay(snap.Display); err != nil {
		return State{}, err
	}

	s := State{
		display:          snap.Display,
		phase:            Idle{},
		awaitingNewEntry: snap.AwaitingNewEntry,
	}
	if s.display == "" {
		s.display = "0"
	}

	if snap.Pending != nil {
		op, err := ParseOperator(string(snap.Pending.Operation))
		if err != nil {
			return State{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
		s.phase = Pending{Operand: float64(snap.Pending.Operand), Operation: op}
	}

	return s, nil
}

func validateDisplay(d string) error {
	if err := checkDisplayLen(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	switch d {
	case "Infinity", "-Infinity", "NaN":
		return nil
	}

	if i := strings.IndexFunc(d, func(r rune) bool {
		return !IsDigitKey(r) && !strings.ContainsRune("+-eE", r)
	}); i >= 0 {
		return fmt.Errorf("%w: display %q has unexpected character at %d", ErrInvalidSnapshot, d, i)
	}
	return nil
}
