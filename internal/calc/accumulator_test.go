package calc

import (
	"math"
	"strings"
	"testing"
)

func press(a *Accumulator, keys string) []Calculation {
	var out []Calculation
	for _, k := range ParseKeys(keys) {
		if c, ok := a.Press(k); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		keys  string
		want  string
		state State
	}{
		{"addition", "7+8=", "15", StateJustEvaluated},
		{"multiply by zero", "9*0=", "0", StateJustEvaluated},
		{"divide by zero", "10/0=", DefaultErrorText, StateError},
		{"left to right", "2+3*4=", "20", StateJustEvaluated},
		{"unicode operators", "2+3×4÷5=", "4", StateJustEvaluated},
		{"negative result", "5-8=", "-3", StateJustEvaluated},
		{"float noise rounded", "0.1+0.2=", "0.3", StateJustEvaluated},
		{"long result rounded", "2/3=", "0.66666667", StateJustEvaluated},
		{"third", "1/3=", "0.33333333", StateJustEvaluated},
		{"exponent notation", "1000000000*1000000000000=", "1e+21", StateJustEvaluated},
		{"continue from result", "7+8=+2=", "17", StateJustEvaluated},
		{"digit after result starts fresh", "7+8=5", "5", StateEntering},
		{"operator replaces pending", "7+-3=", "4", StateJustEvaluated},
		{"equals without right operand", "7+=", "7", StateOperatorPending},
		{"operator shows committed operand", "3.+", "3", StateOperatorPending},
		{"chained divide by zero", "5/0+", DefaultErrorText, StateError},
		{"operator on empty machine", "+", "0", StateEmpty},
		{"equals on empty machine", "=", "0", StateEmpty},
		{"clear", "12+3c", "0", StateEmpty},
		{"decimal operand", "1.5*4=", "6", StateJustEvaluated},
		{"trailing point operand", "4.*2=", "8", StateJustEvaluated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New()
			press(a, tt.keys)
			if got := a.Display(); got != tt.want {
				t.Fatalf("display = %q, want %q", got, tt.want)
			}
			if got := a.State(); got != tt.state {
				t.Fatalf("state = %v, want %v", got, tt.state)
			}
		})
	}
}

func TestEntryDisplayMatchesTypedDigits(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{"0", "0"},
		{"00", "0"},
		{"007", "7"},
		{"0.", "0."},
		{".", "0."},
		{".5", "0.5"},
		{"0.50", "0.50"},
		{"0.05", "0.05"},
		{"1..2", "1.2"},
		{"1.2.3", "1.23"},
		{"120", "120"},
		{"3.14159", "3.14159"},
	}
	for _, tt := range tests {
		a := New()
		a.Clear()
		press(a, tt.keys)
		if got := a.Display(); got != tt.want {
			t.Errorf("keys %q: display = %q, want %q", tt.keys, got, tt.want)
		}
		if got := a.Snapshot().Entry; got != tt.want {
			t.Errorf("keys %q: entry = %q, want %q", tt.keys, got, tt.want)
		}
	}
}

func TestIgnoresNonDigitRunes(t *testing.T) {
	a := New()
	a.InputDigit('7')
	a.InputDigit('a')
	a.InputDigit('-')
	if got := a.Display(); got != "7" {
		t.Fatalf("display = %q, want %q", got, "7")
	}
}

func TestMaxDigits(t *testing.T) {
	a := New(WithMaxDigits(4))
	press(a, "123456")
	if got := a.Display(); got != "1234" {
		t.Fatalf("display = %q, want %q", got, "1234")
	}
	press(a, ".9")
	if got := a.Display(); got != "1234." {
		t.Fatalf("display = %q, want %q", got, "1234.")
	}
}

func TestDivideByZeroResetsMachine(t *testing.T) {
	a := New()
	calcs := press(a, "10/0=")
	if len(calcs) != 1 || !calcs[0].Failed {
		t.Fatalf("expected one failed calculation, got %+v", calcs)
	}
	snap := a.Snapshot()
	if snap.Entry != "" || snap.HasAccumulator || snap.Operator != OpNone {
		t.Fatalf("machine not reset: %+v", snap)
	}
	if snap.Display != DefaultErrorText {
		t.Fatalf("display = %q, want %q", snap.Display, DefaultErrorText)
	}

	// operators, equals and backspace leave the marker in place
	press(a, "+=<")
	if got := a.Display(); got != DefaultErrorText {
		t.Fatalf("display after ignored keys = %q", got)
	}

	press(a, "3")
	snap = a.Snapshot()
	if snap.Display != "3" || snap.State != StateEntering || snap.HasAccumulator {
		t.Fatalf("digit after error should start fresh entry, got %+v", snap)
	}
}

func TestCustomErrorText(t *testing.T) {
	a := New(WithErrorText("错误"))
	press(a, "1/0=")
	if got := a.Display(); got != "错误" {
		t.Fatalf("display = %q, want %q", got, "错误")
	}
	if a2 := New(WithErrorText("  ")); a2.errorText != DefaultErrorText {
		t.Fatalf("blank error text should keep default, got %q", a2.errorText)
	}
}

func TestNonFiniteResultUsesErrorMarker(t *testing.T) {
	a := New()
	a.acc = math.MaxFloat64
	a.hasAcc = true
	a.op = OpMultiply
	a.entry = "10"
	c, ok := a.Evaluate()
	if !ok || !c.Failed {
		t.Fatalf("expected failed calculation, got %+v ok=%v", c, ok)
	}
	if a.State() != StateError {
		t.Fatalf("state = %v, want error", a.State())
	}
}

func TestClearIsIdempotent(t *testing.T) {
	a := New()
	press(a, "12+7")
	a.Clear()
	once := a.Snapshot()
	a.Clear()
	if twice := a.Snapshot(); twice != once {
		t.Fatalf("clear not idempotent: %+v != %+v", twice, once)
	}
	if once.Display != "0" || once.State != StateEmpty {
		t.Fatalf("unexpected cleared state %+v", once)
	}
}

func TestBackspace(t *testing.T) {
	a := New()
	press(a, "125<")
	if got := a.Display(); got != "12" {
		t.Fatalf("display = %q, want 12", got)
	}
	press(a, "<<")
	if got := a.Display(); got != "0" {
		t.Fatalf("display = %q, want 0", got)
	}
	if a.State() != StateEmpty {
		t.Fatalf("state = %v, want empty", a.State())
	}
}

func TestBackspaceOnEmptyEntryKeepsAccumulator(t *testing.T) {
	a := New()
	a.Backspace()
	if got := a.Display(); got != "0" {
		t.Fatalf("display = %q, want 0", got)
	}

	press(a, "9+")
	before := a.Snapshot()
	a.Backspace()
	after := a.Snapshot()
	if after.Accumulator != 9 || !after.HasAccumulator || after.Operator != OpAdd {
		t.Fatalf("backspace touched accumulator: %+v", after)
	}
	if after != before {
		t.Fatalf("backspace on empty entry changed state: %+v -> %+v", before, after)
	}
}

func TestBackspaceAfterResultIsNoop(t *testing.T) {
	a := New()
	press(a, "6*7=<")
	if got := a.Display(); got != "42" {
		t.Fatalf("display = %q, want 42", got)
	}
}

func TestChainedOperatorReportsImplicitCalculation(t *testing.T) {
	a := New()
	calcs := press(a, "2+3*")
	if len(calcs) != 1 {
		t.Fatalf("expected 1 calculation, got %d", len(calcs))
	}
	c := calcs[0]
	if c.Left != 2 || c.Right != 3 || c.Op != OpAdd || c.Result != 5 {
		t.Fatalf("unexpected calculation %+v", c)
	}
	if a.State() != StateOperatorPending {
		t.Fatalf("state = %v, want operator-pending", a.State())
	}
	if got := a.Display(); got != "5" {
		t.Fatalf("display = %q, want 5", got)
	}
	// the implicit result must not be wiped by the next digit
	press(a, "4=")
	if got := a.Display(); got != "20" {
		t.Fatalf("display = %q, want 20", got)
	}
}

func TestCalculationExpression(t *testing.T) {
	a := New()
	calcs := press(a, "1.5+2=")
	if len(calcs) != 1 {
		t.Fatalf("expected 1 calculation, got %d", len(calcs))
	}
	if got := calcs[0].Expression(a.Precision()); got != "1.5 + 2" {
		t.Fatalf("expression = %q", got)
	}
	if calcs[0].Display != "3.5" {
		t.Fatalf("display = %q", calcs[0].Display)
	}
}

func TestStateTransitions(t *testing.T) {
	a := New()
	steps := []struct {
		key  string
		want State
	}{
		{"1", StateEntering},
		{"+", StateOperatorPending},
		{"2", StateEntering},
		{"=", StateJustEvaluated},
		{"4", StateEntering},
		{"/", StateOperatorPending},
		{"0", StateEntering},
		{"=", StateError},
		{"c", StateEmpty},
	}
	var trail []string
	for _, s := range steps {
		press(a, s.key)
		trail = append(trail, s.key)
		if got := a.State(); got != s.want {
			t.Fatalf("after %q: state = %v, want %v", strings.Join(trail, ""), got, s.want)
		}
	}
}
