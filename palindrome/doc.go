// Package palindrome recognizes binary palindromes with three
// nondeterministic pushdown automata run by package pda.
//
// Variants
//
//   - BottomUp (states q0..q3, sentinel EOS): push a prefix, guess the
//     middle, pop the rest against it, then pop EOS by an epsilon move.
//     Finals {q0, q3}; q0 accepts the empty input.
//   - GrammarDriven: grammar.Recognizer for S -> 0 S 0 | 1 S 1 | 0 | 1 | ε,
//     states q0 (matching) and q1 (done), initial {(q0, [EOS S]), (q1, [])}.
//   - Simple (states q0, q1, no sentinel): accepts in q1 with an empty
//     stack.
//
// All three accept exactly the palindromes over {0, 1}, odd or even
// length, including the empty string.
//
// Usage
//
//	in, err := palindrome.Parse("0110")
//	if err != nil {
//	    return err
//	}
//	rep, err := palindrome.Recognize(palindrome.BottomUpVariant, in)
//	fmt.Println(rep.Verdict) // ACCEPTED
//
// Errors
//
//   - ErrBadSymbol       input other than 0/1.
//   - ErrUnknownVariant  unrecognised variant.
package palindrome
