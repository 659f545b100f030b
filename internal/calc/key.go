package calc

import (
	"strings"
	"unicode"
)

// Key is a decoded calculator button.
type Key int

const (
	KeyNone Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyEquals
	KeyClear
)

var keyLabels = map[Key]string{
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeyAdd: "+", KeySub: "-", KeyMul: "*", KeyDiv: "/",
	KeyEquals: "=", KeyClear: "C",
}

var labelKeys = func() map[string]Key {
	out := make(map[string]Key, len(keyLabels)+1)
	for k, label := range keyLabels {
		out[label] = k
	}
	out["c"] = KeyClear
	return out
}()

// Label is the button caption.
func (k Key) Label() string { return keyLabels[k] }

func (k Key) String() string { return k.Label() }

// Digit returns the digit value of a digit key.
func (k Key) Digit() (int, bool) {
	if k >= Key0 && k <= Key9 {
		return int(k - Key0), true
	}
	return 0, false
}

// Operator returns the operator bound to an operator key.
func (k Key) Operator() (Operator, bool) {
	switch k {
	case KeyAdd:
		return OpAdd, true
	case KeySub:
		return OpSub, true
	case KeyMul:
		return OpMul, true
	case KeyDiv:
		return OpDiv, true
	}
	return OpNone, false
}

// ParseKey decodes a button token. Unknown tokens report false.
func ParseKey(token string) (Key, bool) {
	k, ok := labelKeys[token]
	return k, ok
}

// Keypad is the button grid, row by row.
var Keypad = [4][4]Key{
	{Key0, KeyMul, KeyDiv, KeyEquals},
	{Key1, Key2, Key3, KeyAdd},
	{Key4, Key5, Key6, KeySub},
	{Key7, Key8, Key9, KeyClear},
}

// Outcome reports what a dispatched key did.
type Outcome struct {
	Key       Key
	Evaluated bool
	Result    Result
}

// Dispatch applies k to acc.
func Dispatch(acc *Accumulator, k Key) (Outcome, error) {
	out := Outcome{Key: k}
	if d, ok := k.Digit(); ok {
		return out, acc.EnterDigit(d)
	}
	if op, ok := k.Operator(); ok {
		acc.SetOperator(op)
		return out, nil
	}
	switch k {
	case KeyEquals:
		out.Result, out.Evaluated = acc.Evaluate()
	case KeyClear:
		acc.Clear()
	}
	return out, nil
}

// DispatchToken parses token and dispatches it. Unknown tokens are ignored.
func DispatchToken(acc *Accumulator, token string) (Outcome, error) {
	k, ok := ParseKey(token)
	if !ok {
		return Outcome{}, nil
	}
	return Dispatch(acc, k)
}

// Tokenize splits an expression such as "12+3=" into single-rune tokens,
// dropping whitespace.
func Tokenize(expr string) []string {
	var out []string
	for _, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, strings.ToUpper(string(r)))
	}
	return out
}
