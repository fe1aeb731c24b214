package dfa

// Reactive is a state machine with a total transition function and no
// final states: it never gets stuck and its observable output is the
// state reached after every input.
type Reactive[S, I comparable] struct {
	start S
	next  func(S, I) S
}

// NewReactive returns a machine starting in start. Returns ErrNilTransition
// if next is nil.
func NewReactive[S, I comparable](start S, next func(S, I) S) (*Reactive[S, I], error) {
	if next == nil {
		return nil, ErrNilTransition
	}

	return &Reactive[S, I]{start: start, next: next}, nil
}

// Start returns the start state.
func (r *Reactive[S, I]) Start() S { return r.start }

// Run feeds input one symbol at a time and returns the state after each.
func (r *Reactive[S, I]) Run(input []I, opts ...Option[S, I]) []S {
	o := collect(opts)
	out := make([]S, 0, len(input))
	s := r.start
	for i, in := range input {
		s = r.next(s, in)
		out = append(out, s)
		o.onStep(Step[S, I]{Index: i, Input: in, State: s})
	}

	return out
}
