// Package palindrome defines the states, symbols, variants and errors of
// the binary palindrome recognizers.
package palindrome

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Sentinel errors.
var (
	// ErrBadSymbol is returned by Parse for anything but 0, 1, commas and spaces.
	ErrBadSymbol = errors.New("palindrome: input symbol must be 0 or 1")

	// ErrUnknownVariant is returned for an unrecognised variant name.
	ErrUnknownVariant = errors.New("palindrome: unknown variant")
)

// Symbol is an input or stack symbol. EOS never appears in input.
type Symbol uint8

const (
	Zero Symbol = iota // 0
	One                // 1
	EOS                // end-of-stack sentinel
)

// String returns "0", "1" or "EOS".
func (s Symbol) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	case EOS:
		return "EOS"
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
}

// State is a control state. The bottom-up recognizer uses Q0..Q3, the
// simple one Q0 and Q1.
type State uint8

const (
	Q0 State = iota // push
	Q1              // branch (bottom-up) or verify (simple)
	Q2              // pop
	Q3              // done
)

// String returns "q0".."q3".
func (s State) String() string { return fmt.Sprintf("q%d", uint8(s)) }

// Reference is the 16-symbol input used by the classic demonstration
// programs. It is an even-length palindrome.
var Reference = []Symbol{
	Zero, Zero, One, Zero, One, Zero, One, One,
	One, One, Zero, One, Zero, One, Zero, Zero,
}

// Parse reads a binary string such as "0110" or "0, 1, 1, 0".
// Commas and white space are ignored.
func Parse(s string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(s))
	for i, r := range s {
		switch {
		case r == '0':
			out = append(out, Zero)
		case r == '1':
			out = append(out, One)
		case r == ',' || unicode.IsSpace(r):
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadSymbol, r, i)
		}
	}

	return out, nil
}

// Format renders symbols as a compact binary string.
func Format(in []Symbol) string {
	var b strings.Builder
	for _, s := range in {
		b.WriteString(s.String())
	}

	return b.String()
}

// Variant selects one of the recognizers.
type Variant int

const (
	// BottomUpVariant pushes a prefix and guesses the middle.
	BottomUpVariant Variant = iota
	// GrammarVariant runs the grammar-driven recognizer.
	GrammarVariant
	// SimpleVariant is the minimal two-state machine.
	SimpleVariant
)

// Variants lists every variant in declaration order.
var Variants = []Variant{BottomUpVariant, GrammarVariant, SimpleVariant}

// String returns the name accepted by ParseVariant.
func (v Variant) String() string {
	switch v {
	case BottomUpVariant:
		return "bottom-up"
	case GrammarVariant:
		return "grammar"
	case SimpleVariant:
		return "simple"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant maps "bottom-up", "grammar" or "simple" to a Variant.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(name, v.String()) {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// IsPalindrome is the reference predicate the recognizers must agree with.
func IsPalindrome(in []Symbol) bool {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		if in[i] != in[j] {
			return false
		}
	}

	return true
}
