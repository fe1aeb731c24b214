// Package pda simulates nondeterministic pushdown automata by tracking
// the whole frontier of live configurations, one input symbol at a time,
// then closing it under epsilon transitions until a branch accepts or the
// frontier dies out.
package pda

import (
	"fmt"
	"reflect"
)

// walker encapsulates mutable simulation state.
type walker[S, Y comparable] struct {
	auto     Automaton[S, Y]
	opts     Options
	frontier []Configuration[S, Y]
	res      *Result[S, Y]
}

// Run simulates a on input and reports whether it is accepted.
// Returns ErrNilAutomaton for a nil automaton (typed nil pointers included), ErrOptionViolation for bad
// options, ErrEpsilonLimit when the epsilon watchdog fires, the context's
// error on cancellation, or a wrapped OnStep error. A rejected input is
// not an error.
func Run[S, Y comparable](a Automaton[S, Y], input []Y, opts ...Option) (*Result[S, Y], error) {
	if isNil(a) {
		return nil, ErrNilAutomaton
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, Y]{
		auto: a,
		opts: o,
		res:  &Result[S, Y]{},
	}
	w.frontier = w.dedup(a.Initial())
	w.observePeak()

	if err := w.consume(input); err != nil {
		return nil, err
	}
	if w.res.Consumed < len(input) {
		// every branch died before the input ran out
		return w.res, nil
	}
	if err := w.close(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// consume advances the frontier over input, stopping early once it is empty.
func (w *walker[S, Y]) consume(input []Y) error {
	for i, sym := range input {
		if len(w.frontier) == 0 {
			return nil
		}
		if err := w.checkpoint(Consuming, i, fmt.Sprint(sym)); err != nil {
			return err
		}

		var next []Configuration[S, Y]
		for _, c := range w.frontier {
			next = append(next, w.auto.Step(c, sym)...)
		}
		w.frontier = w.dedup(next)
		w.res.Consumed++
		w.observePeak()
	}

	return nil
}

// close alternates the acceptance test and epsilon expansion.
// The first accepting configuration wins.
func (w *walker[S, Y]) close() error {
	for round := 0; len(w.frontier) > 0; round++ {
		if err := w.checkpoint(Closing, round, ""); err != nil {
			return err
		}
		for i := range w.frontier {
			if w.auto.Accepts(w.frontier[i]) {
				witness := w.frontier[i]
				w.res.Verdict = Accepted
				w.res.Witness = &witness
				return nil
			}
		}

		if w.opts.MaxEpsilonRounds > 0 && w.res.EpsilonRounds >= w.opts.MaxEpsilonRounds {
			return fmt.Errorf("%w: %d rounds", ErrEpsilonLimit, w.opts.MaxEpsilonRounds)
		}
		var next []Configuration[S, Y]
		for _, c := range w.frontier {
			next = append(next, w.auto.Epsilon(c)...)
		}
		w.frontier = w.dedup(next)
		w.res.EpsilonRounds++
		w.observePeak()
	}
	w.res.Verdict = Rejected

	return nil
}

// checkpoint honors cancellation, then records and reports the frontier.
func (w *walker[S, Y]) checkpoint(phase Phase, round int, sym string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if !w.opts.RecordTrace && w.opts.OnStep == nil {
		return nil
	}

	snap := Snapshot{
		Phase:          phase,
		Round:          round,
		Symbol:         sym,
		Configurations: make([]string, len(w.frontier)),
	}
	for i, c := range w.frontier {
		snap.Configurations[i] = c.String()
	}
	if w.opts.RecordTrace {
		w.res.Trace = append(w.res.Trace, snap)
	}
	if w.opts.OnStep != nil {
		if err := w.opts.OnStep(snap); err != nil {
			return fmt.Errorf("pda: OnStep error in %s round %d: %w", phase, round, err)
		}
	}

	return nil
}

// dedup drops repeated configurations when enabled, keeping first occurrences.
func (w *walker[S, Y]) dedup(set []Configuration[S, Y]) []Configuration[S, Y] {
	if !w.opts.Dedup || len(set) < 2 {
		return set
	}
	seen := make(map[string]struct{}, len(set))
	out := make([]Configuration[S, Y], 0, len(set))
	for _, c := range set {
		k := c.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	return out
}

// isNil also catches a nil pointer (or map, func...) stored in the interface.
func isNil(a any) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (w *walker[S, Y]) observePeak() {
	if n := len(w.frontier); n > w.res.Peak {
		w.res.Peak = n
	}
}
