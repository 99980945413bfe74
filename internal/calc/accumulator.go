package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPrecision = 8
	DefaultMaxDigits = 16
	DefaultErrorText = "Error"
)

// Operator is a pending binary operation.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "none"
	}
}

// Symbol returns the glyph shown on the keypad.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return ""
	}
}

// apply reports false for division by zero.
func (o Operator) apply(left, right float64) (float64, bool) {
	switch o {
	case OpAdd:
		return left + right, true
	case OpSubtract:
		return left - right, true
	case OpMultiply:
		return left * right, true
	case OpDivide:
		if right == 0 {
			return 0, false
		}
		return left / right, true
	default:
		return 0, false
	}
}

// State is the externally observable machine state.
type State uint8

const (
	StateEmpty State = iota
	StateEntering
	StateOperatorPending
	StateJustEvaluated
	StateError
)

func (s State) String() string {
	switch s {
	case StateEntering:
		return "entering"
	case StateOperatorPending:
		return "operator-pending"
	case StateJustEvaluated:
		return "just-evaluated"
	case StateError:
		return "error"
	default:
		return "empty"
	}
}

// Calculation describes one evaluated binary operation.
type Calculation struct {
	Left    float64
	Op      Operator
	Right   float64
	Result  float64
	Display string
	Failed  bool
}

// Expression renders the operands, e.g. "7 + 8".
func (c Calculation) Expression(precision int) string {
	return FormatResult(c.Left, precision) + " " + c.Op.Symbol() + " " + FormatResult(c.Right, precision)
}

// Snapshot is a copy of the accumulator fields.
type Snapshot struct {
	Entry          string
	Accumulator    float64
	HasAccumulator bool
	Operator       Operator
	Evaluated      bool
	Display        string
	State          State
}

type Option func(*Accumulator)

// WithPrecision bounds the fractional digits of a displayed result.
func WithPrecision(n int) Option {
	return func(a *Accumulator) {
		if n >= 0 {
			a.precision = n
		}
	}
}

// WithMaxDigits bounds the number of digits accepted into one entry.
func WithMaxDigits(n int) Option {
	return func(a *Accumulator) {
		if n > 0 {
			a.maxDigits = n
		}
	}
}

// WithErrorText sets the marker shown after a division by zero.
func WithErrorText(s string) Option {
	return func(a *Accumulator) {
		if strings.TrimSpace(s) != "" {
			a.errorText = s
		}
	}
}

// Accumulator is the calculator state machine. The zero value is not usable;
// construct with New.
type Accumulator struct {
	entry     string
	acc       float64
	hasAcc    bool
	op        Operator
	evaluated bool
	failed    bool
	display   string

	precision int
	maxDigits int
	errorText string
}

func New(opts ...Option) *Accumulator {
	a := &Accumulator{
		precision: DefaultPrecision,
		maxDigits: DefaultMaxDigits,
		errorText: DefaultErrorText,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.Clear()
	return a
}

// Display returns the string currently shown to the user.
func (a *Accumulator) Display() string { return a.display }

// Precision returns the configured result precision.
func (a *Accumulator) Precision() int { return a.precision }

func (a *Accumulator) State() State {
	switch {
	case a.failed:
		return StateError
	case a.evaluated:
		return StateJustEvaluated
	case a.entry != "":
		return StateEntering
	case a.op != OpNone:
		return StateOperatorPending
	default:
		return StateEmpty
	}
}

func (a *Accumulator) Snapshot() Snapshot {
	return Snapshot{
		Entry:          a.entry,
		Accumulator:    a.acc,
		HasAccumulator: a.hasAcc,
		Operator:       a.op,
		Evaluated:      a.evaluated,
		Display:        a.display,
		State:          a.State(),
	}
}

// InputDigit appends a digit or decimal point to the entry buffer. Keystrokes
// that would break the entry invariants are dropped.
func (a *Accumulator) InputDigit(d rune) {
	if d != '.' && (d < '0' || d > '9') {
		return
	}
	if a.failed || a.evaluated {
		a.Clear()
	}
	switch {
	case d == '.':
		if strings.ContainsRune(a.entry, '.') {
			return
		}
		if a.entry == "" {
			a.entry = "0."
		} else {
			a.entry += "."
		}
	case a.entry == "0":
		if d == '0' {
			return
		}
		a.entry = string(d)
	default:
		if digitCount(a.entry) >= a.maxDigits {
			return
		}
		a.entry += string(d)
	}
	a.display = a.entry
}

// InputOperator commits the entry as the left operand and stores op as the
// pending operator. A pending operation with a typed right operand is
// evaluated first, so chains run left to right.
func (a *Accumulator) InputOperator(op Operator) (Calculation, bool) {
	if op == OpNone || a.failed {
		return Calculation{}, false
	}
	var (
		calc Calculation
		done bool
	)
	switch {
	case a.entry != "" && a.hasAcc && a.op != OpNone:
		calc, done = a.evaluate()
		if calc.Failed {
			return calc, done
		}
	case a.entry != "":
		a.acc = parseEntry(a.entry)
		a.hasAcc = true
		a.entry = ""
	case !a.hasAcc:
		return Calculation{}, false
	}
	a.op = op
	a.evaluated = false
	a.display = FormatResult(a.acc, a.precision)
	return calc, done
}

// Evaluate computes accumulator <op> entry. It does nothing unless all three
// are present.
func (a *Accumulator) Evaluate() (Calculation, bool) {
	if a.failed || !a.hasAcc || a.entry == "" || a.op == OpNone {
		return Calculation{}, false
	}
	return a.evaluate()
}

func (a *Accumulator) evaluate() (Calculation, bool) {
	right := parseEntry(a.entry)
	c := Calculation{Left: a.acc, Op: a.op, Right: right}
	result, ok := a.op.apply(a.acc, right)
	if !ok || math.IsInf(result, 0) || math.IsNaN(result) {
		a.fail()
		c.Failed = true
		c.Display = a.display
		return c, true
	}
	c.Result = result
	c.Display = FormatResult(result, a.precision)

	a.acc = result
	a.hasAcc = true
	a.entry = ""
	a.op = OpNone
	a.evaluated = true
	a.display = c.Display
	return c, true
}

func (a *Accumulator) fail() {
	a.entry = ""
	a.acc = 0
	a.hasAcc = false
	a.op = OpNone
	a.evaluated = false
	a.failed = true
	a.display = a.errorText
}

// Clear returns the machine to its initial state.
func (a *Accumulator) Clear() {
	a.entry = ""
	a.acc = 0
	a.hasAcc = false
	a.op = OpNone
	a.evaluated = false
	a.failed = false
	a.display = "0"
}

// Backspace drops the last typed character of the entry buffer.
func (a *Accumulator) Backspace() {
	if a.failed || a.entry == "" {
		return
	}
	a.entry = a.entry[:len(a.entry)-1]
	if a.entry == "" {
		a.display = "0"
		return
	}
	a.display = a.entry
}

// Press dispatches a single key event.
func (a *Accumulator) Press(k Key) (Calculation, bool) {
	switch k.Kind {
	case KeyDigit:
		a.InputDigit(k.Digit)
	case KeyOperator:
		return a.InputOperator(k.Op)
	case KeyEquals:
		return a.Evaluate()
	case KeyClear:
		a.Clear()
	case KeyBackspace:
		a.Backspace()
	}
	return Calculation{}, false
}

func parseEntry(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
