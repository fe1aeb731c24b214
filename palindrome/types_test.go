package palindrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pushy/palindrome"
)

func TestParse(t *testing.T) {
	in, err := palindrome.Parse(" 0, 1\t1 0\n")
	require.NoError(t, err)
	assert.Equal(t, []palindrome.Symbol{palindrome.Zero, palindrome.One, palindrome.One, palindrome.Zero}, in)
	assert.Equal(t, "0110", palindrome.Format(in))

	in, err = palindrome.Parse("")
	require.NoError(t, err)
	assert.Empty(t, in)

	_, err = palindrome.Parse("01a")
	assert.ErrorIs(t, err, palindrome.ErrBadSymbol)
	_, err = palindrome.Parse("2")
	assert.ErrorIs(t, err, palindrome.ErrBadSymbol)
}

func TestParseVariant(t *testing.T) {
	for _, v := range palindrome.Variants {
		got, err := palindrome.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := palindrome.ParseVariant("Grammar")
	require.NoError(t, err)
	assert.Equal(t, palindrome.GrammarVariant, got)

	_, err = palindrome.ParseVariant("top-down")
	assert.ErrorIs(t, err, palindrome.ErrUnknownVariant)
}

// Names of every state and symbol, checked exhaustively so the transition
// tables stay readable in traces.
func TestNames(t *testing.T) {
	symbols := map[palindrome.Symbol]string{
		palindrome.Zero: "0",
		palindrome.One:  "1",
		palindrome.EOS:  "EOS",
	}
	for s, want := range symbols {
		assert.Equal(t, want, s.String())
	}
	assert.Equal(t, "Symbol(9)", palindrome.Symbol(9).String())

	states := map[palindrome.State]string{
		palindrome.Q0: "q0",
		palindrome.Q1: "q1",
		palindrome.Q2: "q2",
		palindrome.Q3: "q3",
	}
	for s, want := range states {
		assert.Equal(t, want, s.String())
	}

	assert.Equal(t, "Variant(7)", palindrome.Variant(7).String())
	assert.Len(t, palindrome.Variants, 3)
}

func TestIsPalindrome(t *testing.T) {
	for s, want := range map[string]bool{
		"":      true,
		"1":     true,
		"10":    false,
		"1001":  true,
		"10101": true,
		"10110": false,
	} {
		in, err := palindrome.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, want, palindrome.IsPalindrome(in), s)
	}
}
