package palindrome

import (
	"github.com/katalvlaran/pushy/pda"
)

// Config is a configuration of the bottom-up and simple recognizers.
type Config = pda.Configuration[State, Symbol]

// BottomUp recognizes binary palindromes by pushing the first half and
// popping it against the second half, guessing the middle
// nondeterministically.
//
//	q0: push the symbol, go to q1; or treat it as an odd middle, go to q2
//	q1: push the symbol, stay in q1; and, if the top equals the symbol,
//	    pop it and go to q2; or treat it as an odd middle, go to q2
//	q2: pop a matching symbol, stay in q2; a mismatch kills the branch
//	ε:  q2 with EOS on top pops it and goes to q3
//
// Initial configuration (q0, [EOS]); final states {q0, q3}.
type BottomUp struct{}

// Initial returns {(q0, [EOS])}.
func (BottomUp) Initial() []Config {
	return []Config{pda.Config(Q0, EOS)}
}

// Step consumes one symbol.
func (BottomUp) Step(c Config, in Symbol) []Config {
	switch c.State {
	case Q0:
		return []Config{
			{State: Q1, Stack: c.Stack.Push(in)},
			{State: Q2, Stack: c.Stack},
		}
	case Q1:
		top, ok := c.Stack.Peek()
		if !ok {
			return nil
		}
		out := []Config{{State: Q1, Stack: c.Stack.Push(in)}}
		if top == in {
			rest, _, _ := c.Stack.Pop()
			out = append(out, Config{State: Q2, Stack: rest})
		}
		return append(out, Config{State: Q2, Stack: c.Stack})
	case Q2:
		top, ok := c.Stack.Peek()
		if !ok || top != in {
			return nil
		}
		rest, _, _ := c.Stack.Pop()
		return []Config{{State: Q2, Stack: rest}}
	default:
		return nil
	}
}

// Epsilon moves q2 to q3 by popping EOS.
func (BottomUp) Epsilon(c Config) []Config {
	if c.State != Q2 {
		return nil
	}
	if top, ok := c.Stack.Peek(); !ok || top != EOS {
		return nil
	}
	rest, _, _ := c.Stack.Pop()

	return []Config{{State: Q3, Stack: rest}}
}

// Accepts reports whether c is in q0 or q3.
func (BottomUp) Accepts(c Config) bool {
	return c.State == Q0 || c.State == Q3
}
