package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	t.Parallel()
	for k, label := range keyLabels {
		got, ok := ParseKey(label)
		require.True(t, ok, label)
		require.Equal(t, k, got)
	}
	got, ok := ParseKey("c")
	require.True(t, ok)
	require.Equal(t, KeyClear, got)

	for _, bad := range []string{"", "x", "10", "%", " "} {
		_, ok := ParseKey(bad)
		require.False(t, ok, bad)
	}
}

func TestKeypadCoversEveryKey(t *testing.T) {
	t.Parallel()
	seen := map[Key]bool{}
	for _, row := range Keypad {
		for _, k := range row {
			seen[k] = true
		}
	}
	require.Len(t, seen, len(keyLabels))
}

func run(t *testing.T, acc *Accumulator, expr string) []Outcome {
	t.Helper()
	var outs []Outcome
	for _, tok := range Tokenize(expr) {
		out, err := DispatchToken(acc, tok)
		require.NoError(t, err)
		outs = append(outs, out)
	}
	return outs
}

func TestDispatchSequences(t *testing.T) {
	t.Parallel()
	cases := []struct {
		expr string
		want string
	}{
		{"123", "123"},
		{"5+2=", "7"},
		{"5+2=-3=", "4"},
		{"5+2=9", "9"},
		{"9/=", "9"},
		{"5/0=", "inf"},
		{"3+4", "3 + 4"},
		{"3+", "3 +"},
		{"8+*2", "8 * 2"},
		{"12*3C", "0"},
		{"1 2 + 3 =", "15"},
		{"7?=", "7"},
		{"2*3=*4=", "24"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			acc := New()
			run(t, acc, tc.expr)
			require.Equal(t, tc.want, acc.Display())
		})
	}
}

func TestTypedDigitsSaturateThenReject(t *testing.T) {
	t.Parallel()
	acc := New()
	for _, tok := range Tokenize(strings.Repeat("9", 310)) {
		_, err := DispatchToken(acc, tok)
		require.NoError(t, err)
	}
	require.True(t, math.IsInf(acc.Left(), 1))
	require.Equal(t, "inf", acc.Display())

	_, err := DispatchToken(acc, "9")
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "inf9", fe.Text)
	require.Equal(t, "inf", acc.Display())
	require.Equal(t, OpNone, acc.Operator())

	// the right operand overflows the same way
	run(t, acc, "C1+")
	for _, tok := range Tokenize(strings.Repeat("9", 310)) {
		_, err := DispatchToken(acc, tok)
		require.NoError(t, err)
	}
	require.Equal(t, "1 + inf", acc.Display())
	_, err = Dispatch(acc, Key4)
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "1 + inf", acc.Display())

	run(t, acc, "=")
	require.Equal(t, "inf", acc.Display())
}

func TestDispatchReportsEvaluation(t *testing.T) {
	t.Parallel()
	acc := New()
	outs := run(t, acc, "6*7=")
	last := outs[len(outs)-1]
	require.True(t, last.Evaluated)
	require.Equal(t, KeyEquals, last.Key)
	require.Equal(t, "6 * 7", last.Result.Expression)
	require.Equal(t, 42.0, last.Result.Value)

	out, err := Dispatch(acc, KeyEquals)
	require.NoError(t, err)
	require.False(t, out.Evaluated)
}

func TestDispatchUnknownTokenIsNoop(t *testing.T) {
	t.Parallel()
	acc := New()
	run(t, acc, "4")
	out, err := DispatchToken(acc, "%")
	require.NoError(t, err)
	require.Equal(t, Outcome{}, out)
	require.Equal(t, "4", acc.Display())
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"1", "2", "+", "3", "=", "C"}, Tokenize(" 12 + 3 =c"))
	require.Empty(t, Tokenize("   "))
}
