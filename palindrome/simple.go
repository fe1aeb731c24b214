package palindrome

import (
	"github.com/katalvlaran/pushy/pda"
)

// Simple is the smallest nondeterministic palindrome PDA: no sentinel, no
// epsilon moves, two start configurations.
//
//	q0: push the symbol and stay in q0, or push it and switch to q1,
//	    or switch to q1 leaving the stack as is (odd middle)
//	q1: pop a matching symbol; a mismatch kills the branch
//
// Accepts in q1 with an empty stack. Starting in q1 as well accepts the
// empty input.
type Simple struct{}

// Initial returns {(q0, []), (q1, [])}.
func (Simple) Initial() []Config {
	return []Config{pda.Config[State, Symbol](Q0), pda.Config[State, Symbol](Q1)}
}

// Step consumes one symbol.
func (Simple) Step(c Config, in Symbol) []Config {
	switch c.State {
	case Q0:
		pushed := c.Stack.Push(in)
		return []Config{
			{State: Q0, Stack: pushed},
			{State: Q1, Stack: pushed},
			{State: Q1, Stack: c.Stack},
		}
	case Q1:
		top, ok := c.Stack.Peek()
		if !ok || top != in {
			return nil
		}
		rest, _, _ := c.Stack.Pop()
		return []Config{{State: Q1, Stack: rest}}
	default:
		return nil
	}
}

// Epsilon has no moves.
func (Simple) Epsilon(Config) []Config { return nil }

// Accepts reports whether c is in q1 with an empty stack.
func (Simple) Accepts(c Config) bool {
	return c.State == Q1 && c.Stack.IsEmpty()
}
