// Package dfa provides table-driven deterministic finite automata and
// reactive (total, output-per-step) state machines.
package dfa

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoFinal is returned when a DFA has no final state.
	ErrNoFinal = errors.New("dfa: no final state")

	// ErrDuplicateTransition is returned when two transitions share a
	// (from, input) pair.
	ErrDuplicateTransition = errors.New("dfa: duplicate transition")

	// ErrNilTransition is returned when a Reactive machine has no transition function.
	ErrNilTransition = errors.New("dfa: transition function is nil")

	// ErrBadInput is returned when an input word cannot be parsed.
	ErrBadInput = errors.New("dfa: bad input")
)

// Transition is one entry of a DFA's (partial) transition table.
type Transition[S, I comparable] struct {
	From  S
	Input I
	To    S
}

type key[S, I comparable] struct {
	from  S
	input I
}

// Step describes one consumed input, reported to WithOnStep observers.
type Step[S, I comparable] struct {
	Index int
	Input I
	// State is the state after reading Input; meaningless when Stuck.
	State S
	Stuck bool
}

// Option configures a run.
type Option[S, I comparable] func(*runOptions[S, I])

type runOptions[S, I comparable] struct {
	onStep func(Step[S, I])
}

// WithOnStep registers an observer called after every input symbol.
func WithOnStep[S, I comparable](fn func(Step[S, I])) Option[S, I] {
	return func(o *runOptions[S, I]) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

func collect[S, I comparable](opts []Option[S, I]) runOptions[S, I] {
	o := runOptions[S, I]{onStep: func(Step[S, I]) {}}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Outcome is the result of running a DFA.
type Outcome[S comparable] struct {
	// State is the last state reached; meaningless when Stuck.
	State    S
	Stuck    bool
	Accepted bool
	// Steps is the number of symbols read.
	Steps int
}

// DFA is an immutable deterministic finite automaton with a partial
// transition function. A missing transition makes the machine stuck, and a
// stuck machine stays stuck.
type DFA[S, I comparable] struct {
	start  S
	finals map[S]struct{}
	delta  map[key[S, I]]S
}

// New validates transitions and returns the DFA.
// Returns ErrNoFinal or ErrDuplicateTransition.
func New[S, I comparable](start S, finals []S, transitions ...Transition[S, I]) (*DFA[S, I], error) {
	if len(finals) == 0 {
		return nil, ErrNoFinal
	}
	d := &DFA[S, I]{
		start:  start,
		finals: make(map[S]struct{}, len(finals)),
		delta:  make(map[key[S, I]]S, len(transitions)),
	}
	for _, f := range finals {
		d.finals[f] = struct{}{}
	}
	for _, t := range transitions {
		k := key[S, I]{from: t.From, input: t.Input}
		if _, dup := d.delta[k]; dup {
			return nil, fmt.Errorf("%w: (%v, %v)", ErrDuplicateTransition, t.From, t.Input)
		}
		d.delta[k] = t.To
	}

	return d, nil
}

// Start returns the start state.
func (d *DFA[S, I]) Start() S { return d.start }

// IsFinal reports whether s is a final state.
func (d *DFA[S, I]) IsFinal(s S) bool {
	_, ok := d.finals[s]
	return ok
}

// Next returns the successor of s on in; ok is false if there is none.
func (d *DFA[S, I]) Next(s S, in I) (S, bool) {
	to, ok := d.delta[key[S, I]{from: s, input: in}]
	return to, ok
}

// Run reads the whole input from the start state.
func (d *DFA[S, I]) Run(input []I, opts ...Option[S, I]) Outcome[S] {
	o := collect(opts)
	out := Outcome[S]{State: d.start}
	for i, in := range input {
		if !out.Stuck {
			next, ok := d.Next(out.State, in)
			if ok {
				out.State = next
			} else {
				var zero S
				out.State, out.Stuck = zero, true
			}
		}
		out.Steps++
		o.onStep(Step[S, I]{Index: i, Input: in, State: out.State, Stuck: out.Stuck})
	}
	out.Accepted = !out.Stuck && d.IsFinal(out.State)

	return out
}

// Accepts reports whether the DFA accepts input.
func (d *DFA[S, I]) Accepts(input []I) bool {
	return d.Run(input).Accepted
}
