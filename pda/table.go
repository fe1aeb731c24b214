package pda

import (
	"errors"
	"fmt"
)

// Sentinel errors for building a Table.
var (
	// ErrNoInitial is returned when a Table has no initial configuration.
	ErrNoInitial = errors.New("pda: no initial configuration")

	// ErrNoFinal is returned when a Table has no final state.
	ErrNoFinal = errors.New("pda: no final state")

	// ErrEpsilonGrowth is returned for an epsilon rule that pushes symbols.
	// Such a rule would not shrink the stack and could loop forever.
	ErrEpsilonGrowth = errors.New("pda: epsilon rule must not push")
)

// Rule is one row of a transition table. A rule fires when the machine is
// in From with Top on the stack and, unless Epsilon is set, Input is the
// next input symbol. Firing pops Top, pushes Push (bottom to top) and
// moves to To.
type Rule[S, Y comparable] struct {
	From    S
	Input   Y
	Epsilon bool
	Top     Y
	To      S
	Push    []Y
}

// String renders the rule as "q1, 0, 1 -> q1, [1 0]".
func (r Rule[S, Y]) String() string {
	in := fmt.Sprint(r.Input)
	if r.Epsilon {
		in = "ε"
	}

	return fmt.Sprintf("%v, %s, %v -> %v, %v", r.From, in, r.Top, r.To, r.Push)
}

type ruleKey[S, Y comparable] struct {
	from    S
	input   Y
	epsilon bool
	top     Y
}

// TableOption configures a Table.
type TableOption func(*tableOptions)

type tableOptions struct {
	emptyStack bool
}

// WithEmptyStack requires an empty stack, in addition to a final state,
// for a configuration to accept.
func WithEmptyStack() TableOption {
	return func(o *tableOptions) {
		o.emptyStack = true
	}
}

// Table is an Automaton whose transition relation is an explicit data
// table indexed by (state, input, stack top). It is immutable once built.
type Table[S, Y comparable] struct {
	initial    []Configuration[S, Y]
	finals     map[S]struct{}
	rules      map[ruleKey[S, Y]][]Rule[S, Y]
	emptyStack bool
}

// NewTable validates and indexes rules.
// Returns ErrNoInitial, ErrNoFinal, or ErrEpsilonGrowth.
func NewTable[S, Y comparable](initial []Configuration[S, Y], finals []S, rules []Rule[S, Y], opts ...TableOption) (*Table[S, Y], error) {
	if len(initial) == 0 {
		return nil, ErrNoInitial
	}
	if len(finals) == 0 {
		return nil, ErrNoFinal
	}
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[S, Y]{
		initial:    append([]Configuration[S, Y](nil), initial...),
		finals:     make(map[S]struct{}, len(finals)),
		rules:      make(map[ruleKey[S, Y]][]Rule[S, Y], len(rules)),
		emptyStack: o.emptyStack,
	}
	for _, f := range finals {
		t.finals[f] = struct{}{}
	}
	for i, r := range rules {
		if r.Epsilon && len(r.Push) > 0 {
			return nil, fmt.Errorf("%w: rule %d (%v)", ErrEpsilonGrowth, i, r)
		}
		k := ruleKey[S, Y]{from: r.From, top: r.Top, epsilon: r.Epsilon}
		if !r.Epsilon {
			k.input = r.Input
		}
		r.Push = append([]Y(nil), r.Push...)
		t.rules[k] = append(t.rules[k], r)
	}

	return t, nil
}

// Initial returns a copy of the initial configurations.
func (t *Table[S, Y]) Initial() []Configuration[S, Y] {
	return append([]Configuration[S, Y](nil), t.initial...)
}

// Step fires every non-epsilon rule matching (state, in, top).
func (t *Table[S, Y]) Step(c Configuration[S, Y], in Y) []Configuration[S, Y] {
	top, ok := c.Stack.Peek()
	if !ok {
		return nil
	}

	return t.fire(c, ruleKey[S, Y]{from: c.State, input: in, top: top})
}

// Epsilon fires every epsilon rule matching (state, top).
func (t *Table[S, Y]) Epsilon(c Configuration[S, Y]) []Configuration[S, Y] {
	top, ok := c.Stack.Peek()
	if !ok {
		return nil
	}

	return t.fire(c, ruleKey[S, Y]{from: c.State, epsilon: true, top: top})
}

// Accepts reports whether c is in a final state (and, with WithEmptyStack,
// has an empty stack).
func (t *Table[S, Y]) Accepts(c Configuration[S, Y]) bool {
	if _, ok := t.finals[c.State]; !ok {
		return false
	}

	return !t.emptyStack || c.Stack.IsEmpty()
}

func (t *Table[S, Y]) fire(c Configuration[S, Y], k ruleKey[S, Y]) []Configuration[S, Y] {
	rules := t.rules[k]
	if len(rules) == 0 {
		return nil
	}
	rest, _, err := c.Stack.Pop()
	if err != nil {
		return nil
	}
	out := make([]Configuration[S, Y], 0, len(rules))
	for _, r := range rules {
		out = append(out, Configuration[S, Y]{State: r.To, Stack: rest.PushAll(r.Push...)})
	}

	return out
}
