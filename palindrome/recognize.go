// Package palindrome provides three nondeterministic pushdown automata that
// recognize binary palindromes, and a single entry point to run any of them.
package palindrome

import (
	"fmt"

	"github.com/katalvlaran/pushy/grammar"
	"github.com/katalvlaran/pushy/pda"
)

// Grammar returns the binary palindrome grammar
//
//	S -> 0 S 0 | 1 S 1 | 0 | 1 | ε
//
// The single-terminal alternatives derive the middle of odd palindromes.
func Grammar() *grammar.Grammar {
	g, err := grammar.NewBuilder("S").
		Rule("S", grammar.Lit("0"), grammar.Ref("S"), grammar.Lit("0")).
		Rule("S", grammar.Lit("1"), grammar.Ref("S"), grammar.Lit("1")).
		Rule("S", grammar.Lit("0")).
		Rule("S", grammar.Lit("1")).
		Rule("S", grammar.Epsilon()).
		Build()
	if err != nil {
		// the literal above is well-formed
		panic(err)
	}

	return g
}

// GrammarDriven returns the recognizer derived from Grammar().
func GrammarDriven() *grammar.Recognizer {
	r, err := grammar.NewRecognizer(Grammar())
	if err != nil {
		panic(err)
	}

	return r
}

// Terminals converts binary symbols to grammar terminals.
func Terminals(in []Symbol) []grammar.Symbol {
	out := make([]grammar.Symbol, len(in))
	for i, s := range in {
		out[i] = grammar.T(s.String())
	}

	return out
}

// Recognize runs the selected variant on input.
// Returns ErrUnknownVariant, ErrBadSymbol for EOS in the input, or any
// error from pda.Run.
func Recognize(v Variant, input []Symbol, opts ...pda.Option) (pda.Report, error) {
	for i, s := range input {
		if s != Zero && s != One {
			return pda.Report{}, fmt.Errorf("%w: %v at offset %d", ErrBadSymbol, s, i)
		}
	}

	switch v {
	case BottomUpVariant:
		return report[State, Symbol](pda.Run[State, Symbol](BottomUp{}, input, opts...))
	case SimpleVariant:
		return report[State, Symbol](pda.Run[State, Symbol](Simple{}, input, opts...))
	case GrammarVariant:
		return report[grammar.State, grammar.Symbol](pda.Run[grammar.State, grammar.Symbol](GrammarDriven(), Terminals(input), opts...))
	default:
		return pda.Report{}, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
}

func report[S, Y comparable](res *pda.Result[S, Y], err error) (pda.Report, error) {
	if err != nil {
		return pda.Report{}, err
	}

	return res.Report, nil
}
