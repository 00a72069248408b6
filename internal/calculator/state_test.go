package calculator

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

// press replays a key sequence from a fresh state and fails the test on error.
func press(t *testing.T, seq string) State {
	t.Helper()
	keys, err := ParseSequence(seq)
	if err != nil {
		t.Fatalf("parsing %q: %v", seq, err)
	}
	s, err := Replay(NewState(), keys, nil)
	if err != nil {
		t.Fatalf("replaying %q: %v", seq, err)
	}
	return s
}

func TestKeySequencesDisplay(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{name: "single digit", seq: "7", want: "7"},
		{name: "concatenation", seq: "123", want: "123"},
		{name: "leading zeros collapse", seq: "007", want: "7"},
		{name: "zeros stay single", seq: "000", want: "0"},
		{name: "trailing zeros kept", seq: "500", want: "500"},
		{name: "addition", seq: "7+8=", want: "15"},
		{name: "no precedence", seq: "2+3*4=", want: "20"},
		{name: "chain shows intermediate", seq: "2+3*", want: "5"},
		{name: "subtraction below zero", seq: "3-10=", want: "-7"},
		{name: "fractional division", seq: "1/4=", want: "0.25"},
		{name: "floating point noise kept", seq: "0.1+0.2=", want: "0.30000000000000004"},
		{name: "decimal replaces zero", seq: ".5", want: ".5"},
		{name: "bare decimal operand", seq: ".5+1=", want: "1.5"},
		{name: "repeated decimal points typed", seq: "1..2", want: "1..2"},
		{name: "repeated decimal points parse prefix", seq: "1..2+1=", want: "2"},
		{name: "operator twice reuses display", seq: "2++", want: "4"},
		{name: "digit after equals starts fresh", seq: "7+8=2", want: "2"},
		{name: "operator after equals continues", seq: "7+8=+1=", want: "16"},
		{name: "divide by zero", seq: "5/0=", want: "Infinity"},
		{name: "negative divide by zero", seq: "0-5/0=", want: "-Infinity"},
		{name: "zero by zero", seq: "0/0=", want: "NaN"},
		{name: "clear mid calculation", seq: "9*9C", want: "0"},
		{name: "large result uses exponent", seq: "100000000000*10000000000000=", want: "1e+24"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := press(t, tc.seq).Display(); got != tc.want {
				t.Fatalf("%q: expected display %q, got %q", tc.seq, tc.want, got)
			}
		})
	}
}

func TestDigitsOnlyDisplayIsLeadingZeroCollapsedConcatenation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		n := 1 + rng.IntN(12)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(byte('0' + rng.IntN(10)))
		}
		seq := sb.String()

		want := strings.TrimLeft(seq, "0")
		if want == "" {
			want = "0"
		}

		if got := press(t, seq).Display(); got != want {
			t.Fatalf("%q: expected display %q, got %q", seq, want, got)
		}
	}
}

func TestInputDigitAfterClearReplacesZero(t *testing.T) {
	s := press(t, "12+34=").Clear()

	s, err := s.InputDigit('1')
	if err != nil {
		t.Fatalf("input digit: %v", err)
	}
	if got := s.Display(); got != "1" {
		t.Fatalf("expected display %q, got %q", "1", got)
	}
}

func TestEqualsWithoutPendingIsNoOp(t *testing.T) {
	for _, seq := range []string{"", "42", "7+8=", "1..2"} {
		s := press(t, seq)
		if got := s.Equals(); got != s {
			t.Fatalf("%q: expected Equals to leave state unchanged, got %+v from %+v", seq, got, s)
		}
	}
}

func TestClearResetsEverything(t *testing.T) {
	for _, seq := range []string{"", "5", "5+", "5+3", "5+3=", "0/0=", "2+3*"} {
		s := press(t, seq).Clear()

		if s.Display() != "0" {
			t.Fatalf("%q: expected display 0, got %q", seq, s.Display())
		}
		if _, ok := s.Phase().(Idle); !ok {
			t.Fatalf("%q: expected Idle, got %#v", seq, s.Phase())
		}
		if s.AwaitingNewEntry() {
			t.Fatalf("%q: expected awaitingNewEntry false", seq)
		}
		if s != NewState() {
			t.Fatalf("%q: expected default state, got %+v", seq, s)
		}
	}
}

func TestInputOperationSetsPending(t *testing.T) {
	s := press(t, "12")

	s, err := s.InputOperation(Multiply)
	if err != nil {
		t.Fatalf("input operation: %v", err)
	}

	p, ok := s.Phase().(Pending)
	if !ok {
		t.Fatalf("expected Pending, got %#v", s.Phase())
	}
	if p.Operand != 12 || p.Operation != Multiply {
		t.Fatalf("expected Pending{12 *}, got %+v", p)
	}
	if !s.AwaitingNewEntry() {
		t.Fatal("expected awaitingNewEntry after operator")
	}
	if s.Display() != "12" {
		t.Fatalf("expected display to keep %q, got %q", "12", s.Display())
	}
}

func TestEqualsClearsPendingAndAwaitsEntry(t *testing.T) {
	s := press(t, "6/4=")

	if _, ok := s.Phase().(Idle); !ok {
		t.Fatalf("expected Idle after equals, got %#v", s.Phase())
	}
	if !s.AwaitingNewEntry() {
		t.Fatal("expected awaitingNewEntry after equals")
	}
	if s.Display() != "1.5" {
		t.Fatalf("expected display %q, got %q", "1.5", s.Display())
	}
}

func TestInvalidInputLeavesStateUnchanged(t *testing.T) {
	s := press(t, "3+4")

	got, err := s.InputDigit('a')
	if !errors.Is(err, ErrInvalidDigit) {
		t.Fatalf("expected ErrInvalidDigit, got %v", err)
	}
	if got != s {
		t.Fatal("expected state unchanged after invalid digit")
	}

	got, err = s.InputOperation("%")
	if !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("expected ErrInvalidOperator, got %v", err)
	}
	if got != s {
		t.Fatal("expected state unchanged after invalid operator")
	}
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	before := NewState()

	after, err := before.InputDigit('9')
	if err != nil {
		t.Fatalf("input digit: %v", err)
	}
	if _, err := after.InputOperation(Add); err != nil {
		t.Fatalf("input operation: %v", err)
	}

	if before.Display() != "0" {
		t.Fatalf("expected original state untouched, got display %q", before.Display())
	}
	if after.Display() != "9" || after.AwaitingNewEntry() {
		t.Fatalf("expected intermediate state untouched, got %+v", after)
	}
}

func TestZeroValueStateBehavesLikeNewState(t *testing.T) {
	var s State

	if s.Display() != "0" {
		t.Fatalf("expected display 0, got %q", s.Display())
	}
	if _, ok := s.Phase().(Idle); !ok {
		t.Fatalf("expected Idle, got %#v", s.Phase())
	}

	s, err := s.InputDigit('5')
	if err != nil {
		t.Fatalf("input digit: %v", err)
	}
	if s.Display() != "5" {
		t.Fatalf("expected display 5, got %q", s.Display())
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		a, b float64
		op   Operator
		want float64
	}{
		{a: 2, b: 3, op: Add, want: 5},
		{a: 2, b: 3, op: Subtract, want: -1},
		{a: 2, b: 3, op: Multiply, want: 6},
		{a: 3, b: 2, op: Divide, want: 1.5},
		{a: 5, b: 0, op: Divide, want: math.Inf(1)},
		{a: -5, b: 0, op: Divide, want: math.Inf(-1)},
		{a: 4, b: 9, op: "?", want: 9},
	}

	for _, tc := range tests {
		if got := Calculate(tc.a, tc.b, tc.op); got != tc.want {
			t.Fatalf("Calculate(%v, %v, %q): expected %v, got %v", tc.a, tc.b, tc.op, tc.want, got)
		}
	}

	if got := Calculate(0, 0, Divide); !math.IsNaN(got) {
		t.Fatalf("Calculate(0, 0, /): expected NaN, got %v", got)
	}
}

func TestParseOperator(t *testing.T) {
	tests := map[string]Operator{
		"+": Add, "add": Add, "ADD": Add,
		"-": Subtract, "subtract": Subtract,
		"*": Multiply, "x": Multiply, "×": Multiply, "multiply": Multiply,
		"/": Divide, "÷": Divide, " divide ": Divide,
	}
	for in, want := range tests {
		got, err := ParseOperator(in)
		if err != nil {
			t.Fatalf("ParseOperator(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseOperator(%q): expected %q, got %q", in, want, got)
		}
	}

	for _, in := range []string{"", "%", "^", "mod"} {
		if _, err := ParseOperator(in); !errors.Is(err, ErrInvalidOperator) {
			t.Fatalf("ParseOperator(%q): expected ErrInvalidOperator, got %v", in, err)
		}
	}
}
