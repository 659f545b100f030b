// Package calc holds the calculator accumulator and the key dispatcher that
// drives it.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Operator is the pending binary operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Symbol returns the glyph shown on the display.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return ""
	}
}

func (o Operator) String() string {
	if o == OpNone {
		return "none"
	}
	return o.Symbol()
}

// identity is the right operand used when none was entered.
func (o Operator) identity() float64 {
	switch o {
	case OpMul, OpDiv:
		return 1
	default:
		return 0
	}
}

func (o Operator) apply(l, r float64) float64 {
	switch o {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		return l
	}
}

// ErrInvalidDigit is returned by EnterDigit for values outside 0-9.
var ErrInvalidDigit = errors.New("digit out of range")

// FormatError reports operand text that could not be parsed back to a number.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid operand %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Result describes a completed evaluation.
type Result struct {
	Expression string
	Value      float64
}

// Accumulator is the calculator state. The zero value is ready to use and
// equals a freshly cleared calculator.
type Accumulator struct {
	left      float64
	right     *float64
	op        Operator
	evaluated bool
}

// New returns a cleared accumulator.
func New() *Accumulator { return &Accumulator{} }

func (a *Accumulator) Left() float64 { return a.left }

// Right returns the right operand and whether one has been entered.
func (a *Accumulator) Right() (float64, bool) {
	if a.right == nil {
		return 0, false
	}
	return *a.right, true
}

func (a *Accumulator) Operator() Operator { return a.op }

func (a *Accumulator) Evaluated() bool { return a.evaluated }

// EnterDigit appends d to the active operand's decimal text and parses the
// result. The active operand is left while no operator is pending, right
// otherwise. A digit typed straight after an evaluation starts a new number.
func (a *Accumulator) EnterDigit(d int) error {
	if d < 0 || d > 9 {
		return ErrInvalidDigit
	}
	if a.evaluated && a.op == OpNone {
		a.left = 0
		a.right = nil
		a.evaluated = false
	}

	if a.op != OpNone {
		var cur float64
		if a.right != nil {
			cur = *a.right
		}
		v, err := appendDigit(cur, d)
		if err != nil {
			return err
		}
		a.right = &v
		return nil
	}

	v, err := appendDigit(a.left, d)
	if err != nil {
		return err
	}
	a.left = v
	return nil
}

func appendDigit(cur float64, d int) (float64, error) {
	text := FormatNumber(cur) + strconv.Itoa(d)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Overlong digit strings saturate to infinity rather than fail.
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return v, nil
		}
		return 0, &FormatError{Text: text, Err: err}
	}
	return v, nil
}

// SetOperator records op as pending; the latest call wins. OpNone is ignored.
func (a *Accumulator) SetOperator(op Operator) {
	if op == OpNone {
		return
	}
	a.op = op
}

// Evaluate applies the pending operator. It reports false and changes
// nothing when no operator is pending.
func (a *Accumulator) Evaluate() (Result, bool) {
	if a.op == OpNone {
		return Result{}, false
	}
	expr := a.Display()
	r := a.op.identity()
	if a.right != nil {
		r = *a.right
	}
	a.left = a.op.apply(a.left, r)
	a.right = nil
	a.op = OpNone
	a.evaluated = true
	return Result{Expression: expr, Value: a.left}, true
}

// Clear zeroes the operands and drops the pending operator. The evaluated
// flag is kept.
func (a *Accumulator) Clear() {
	a.left = 0
	a.right = nil
	a.op = OpNone
}

// SetValue overwrites the left operand.
func (a *Accumulator) SetValue(v float64) {
	a.left = v
}

// Recall loads v as if it were the result of an evaluation: operands and
// operator are dropped, and the next digit starts a new number.
func (a *Accumulator) Recall(v float64) {
	a.left = v
	a.right = nil
	a.op = OpNone
	a.evaluated = true
}

// Display renders the state as shown on the calculator screen.
func (a *Accumulator) Display() string {
	left := FormatNumber(a.left)
	if a.op == OpNone {
		return left
	}
	if a.right != nil {
		return left + " " + a.op.Symbol() + " " + FormatNumber(*a.right)
	}
	return left + " " + a.op.Symbol()
}
