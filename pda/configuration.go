package pda

import (
	"fmt"

	"github.com/katalvlaran/pushy/stack"
)

// Configuration is one live execution branch: a control state and the
// stack contents. Configurations are values; transitions build new ones.
type Configuration[S, Y comparable] struct {
	State S
	Stack stack.Stack[Y]
}

// Config is shorthand for a Configuration with a stack given bottom to top.
func Config[S, Y comparable](state S, bottomToTop ...Y) Configuration[S, Y] {
	return Configuration[S, Y]{State: state, Stack: stack.Of(bottomToTop...)}
}

// Equal reports whether both state and stack match element-wise.
func (c Configuration[S, Y]) Equal(o Configuration[S, Y]) bool {
	return c.State == o.State && c.Stack.Equal(o.Stack)
}

// String renders the configuration as "(q1, [EOS 0])".
func (c Configuration[S, Y]) String() string {
	return fmt.Sprintf("(%v, %v)", c.State, c.Stack)
}

// Key returns a string identifying the configuration, used for dedup.
func (c Configuration[S, Y]) Key() string {
	return fmt.Sprintf("%#v|%#v", c.State, c.Stack.Slice())
}

// Automaton is a nondeterministic pushdown automaton given by its
// transition relation. Implementations must be pure: the same arguments
// always yield equal successors, and receivers are never modified.
//
// Step consumes exactly one input symbol; Epsilon consumes none. Both
// return nil (or an empty slice) when the branch is stuck, which simply
// drops it. Every configuration returned by Epsilon must have a strictly
// shorter stack than its argument; this is what makes Run terminate.
type Automaton[S, Y comparable] interface {
	Initial() []Configuration[S, Y]
	Step(c Configuration[S, Y], in Y) []Configuration[S, Y]
	Epsilon(c Configuration[S, Y]) []Configuration[S, Y]
	Accepts(c Configuration[S, Y]) bool
}
