package calculator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownKey is returned when a token does not name a keypad key.
var ErrUnknownKey = errors.New("unknown key")

// KeyKind identifies which evaluator operation a key drives.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyOperator
	KeyEquals
	KeyClear
)

func (k KeyKind) String() string {
	switch k {
	case KeyDigit:
		return "digit"
	case KeyOperator:
		return "operator"
	case KeyEquals:
		return "equals"
	case KeyClear:
		return "clear"
	}
	return fmt.Sprintf("KeyKind(%d)", int(k))
}

// Key is a single keypad press.
type Key struct {
	Kind     KeyKind
	Digit    rune
	Operator Operator
}

func (k Key) String() string {
	switch k.Kind {
	case KeyDigit:
		return string(k.Digit)
	case KeyOperator:
		return string(k.Operator)
	case KeyEquals:
		return "="
	case KeyClear:
		return "C"
	}
	return "?"
}

// ParseKey maps a token to a Key. Besides single characters it accepts the
// names terminals report for special keys ("enter", "esc").
func ParseKey(token string) (Key, error) {
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if IsDigitKey(r) {
			return Key{Kind: KeyDigit, Digit: r}, nil
		}
	}

	switch strings.ToLower(token) {
	case "=", "enter":
		return Key{Kind: KeyEquals}, nil
	case "c", "esc", "escape", "clear":
		return Key{Kind: KeyClear}, nil
	}

	op, err := ParseOperator(token)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, token)
	}
	return Key{Kind: KeyOperator, Operator: op}, nil
}

// ParseSequence reads one key per character. Spaces and tabs are skipped;
// line breaks count as "=".
func ParseSequence(s string) ([]Key, error) {
	keys := make([]Key, 0, len(s))
	pos := 0
	for _, r := range s {
		pos++
		switch {
		case r == '\n' || r == '\r':
			keys = append(keys, Key{Kind: KeyEquals})
			continue
		case unicode.IsSpace(r):
			continue
		}

		k, err := ParseKey(string(r))
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", pos, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Apply dispatches k to the matching State operation.
func (s State) Apply(k Key) (State, error) {
	switch k.Kind {
	case KeyDigit:
		return s.InputDigit(k.Digit)
	case KeyOperator:
		return s.InputOperation(k.Operator)
	case KeyEquals:
		return s.Equals(), nil
	case KeyClear:
		return s.Clear(), nil
	}
	return s, fmt.Errorf("%w: kind %s", ErrUnknownKey, k.Kind)
}

// Replay applies keys in order starting from s. observe, when non-nil, sees
// each key together with the state it produced. On error the state before
// the failing key is returned.
func Replay(s State, keys []Key, observe func(Key, State)) (State, error) {
	for i, k := range keys {
		next, err := s.Apply(k)
		if err != nil {
			return s, fmt.Errorf("key %d: %w", i+1, err)
		}
		s = next
		if observe != nil {
			observe(k, s)
		}
	}
	return s, nil
}
