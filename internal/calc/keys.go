package calc

import "strings"

type KeyKind uint8

const (
	KeyDigit KeyKind = iota + 1
	KeyOperator
	KeyEquals
	KeyClear
	KeyBackspace
)

// Key is one calculator input event.
type Key struct {
	Kind  KeyKind
	Digit rune
	Op    Operator
}

// ParseKey maps a key name, as reported by a terminal, to an input event.
func ParseKey(name string) (Key, bool) {
	switch strings.ToLower(name) {
	case "enter", "=":
		return Key{Kind: KeyEquals}, true
	case "backspace", "delete", "<":
		return Key{Kind: KeyBackspace}, true
	case "esc", "c":
		return Key{Kind: KeyClear}, true
	}
	r := []rune(name)
	if len(r) != 1 {
		return Key{}, false
	}
	return parseRune(r[0])
}

// ParseKeys maps each character of s to an input event, skipping whitespace
// and characters that are not calculator keys. '<' stands for backspace.
func ParseKeys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		if r == '<' {
			keys = append(keys, Key{Kind: KeyBackspace})
			continue
		}
		if k, ok := parseRune(r); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func parseRune(r rune) (Key, bool) {
	switch {
	case r >= '0' && r <= '9', r == '.':
		return Key{Kind: KeyDigit, Digit: r}, true
	case r == '=':
		return Key{Kind: KeyEquals}, true
	case r == 'c' || r == 'C':
		return Key{Kind: KeyClear}, true
	}
	if op := operatorFor(r); op != OpNone {
		return Key{Kind: KeyOperator, Op: op}, true
	}
	return Key{}, false
}

func operatorFor(r rune) Operator {
	switch r {
	case '+':
		return OpAdd
	case '-', '−':
		return OpSubtract
	case '*', 'x', 'X', '×':
		return OpMultiply
	case '/', '÷':
		return OpDivide
	default:
		return OpNone
	}
}
