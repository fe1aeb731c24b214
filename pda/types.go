// Package pda provides tunable options, results and error definitions
// for simulating nondeterministic pushdown automata.
package pda

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for PDA simulation.
var (
	// ErrNilAutomaton is returned if a nil Automaton is passed to Run.
	ErrNilAutomaton = errors.New("pda: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pda: invalid option supplied")

	// ErrEpsilonLimit is returned when the epsilon phase runs for more rounds
	// than WithMaxEpsilonRounds allows.
	ErrEpsilonLimit = errors.New("pda: epsilon round limit exceeded")
)

// Verdict is the outcome of a simulation.
type Verdict int

const (
	// Rejected means no branch reached an accepting configuration.
	Rejected Verdict = iota
	// Accepted means at least one branch reached an accepting configuration.
	Accepted
)

// String returns "ACCEPTED" or "REJECTED".
func (v Verdict) String() string {
	if v == Accepted {
		return "ACCEPTED"
	}

	return "REJECTED"
}

// Phase tells which part of the simulation a Snapshot was taken in.
type Phase int

const (
	// Consuming is the phase that reads one input symbol per round.
	Consuming Phase = iota
	// Closing is the epsilon phase after the input is exhausted.
	Closing
)

// String returns "consuming" or "closing".
func (p Phase) String() string {
	if p == Closing {
		return "closing"
	}

	return "consuming"
}

// Snapshot is the frontier observed at the start of one round, rendered
// with fmt so it can be logged without knowing the automaton's types.
type Snapshot struct {
	Phase Phase
	// Round counts from 0 within each phase.
	Round int
	// Symbol is the input symbol about to be read; empty while Closing.
	Symbol string
	// Configurations lists every live configuration, e.g. "(q1, [EOS 0])".
	Configurations []string
}

// String renders the frontier the way the trace of the classic programs did.
func (s Snapshot) String() string {
	return fmt.Sprintf("%v", s.Configurations)
}

// Option configures Run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds parameters and callbacks to customize a simulation.
type Options struct {
	// Ctx allows cancellation; checked once per round.
	Ctx context.Context

	// Dedup drops configurations equal to one already in the frontier.
	// The verdict is unaffected; only the frontier size changes.
	Dedup bool

	// MaxEpsilonRounds, if > 0, bounds the number of epsilon rounds.
	// 0 means no limit.
	MaxEpsilonRounds int

	// RecordTrace stores a Snapshot of every round in Report.Trace.
	RecordTrace bool

	// OnStep is called with each frontier before it is advanced.
	// Returning an error aborts the run.
	OnStep func(Snapshot) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no deduplication
//   - no epsilon round limit
//   - no trace, no-op OnStep hook
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Dedup:            false,
		MaxEpsilonRounds: 0,
		RecordTrace:      false,
		OnStep:           nil,
		err:              nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDedup removes duplicate configurations from every frontier.
func WithDedup() Option {
	return func(o *Options) {
		o.Dedup = true
	}
}

// WithMaxEpsilonRounds bounds the epsilon phase.
//
//	n > 0: at most n epsilon rounds, then ErrEpsilonLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxEpsilonRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxEpsilonRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxEpsilonRounds = n
	}
}

// WithTrace records every frontier in Report.Trace.
func WithTrace() Option {
	return func(o *Options) {
		o.RecordTrace = true
	}
}

// WithOnStep registers an observer called with every frontier.
func WithOnStep(fn func(Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Report is the type-independent part of a simulation result.
type Report struct {
	Verdict Verdict
	// Consumed is the number of input symbols read. It is smaller than the
	// input length when every branch died early.
	Consumed int
	// EpsilonRounds is the number of epsilon expansions performed.
	EpsilonRounds int
	// Peak is the largest frontier seen.
	Peak int
	// Trace holds one Snapshot per round when WithTrace is set.
	Trace []Snapshot
}

// Result is the outcome of Run.
type Result[S, Y comparable] struct {
	Report
	// Witness is the first accepting configuration found; nil when rejected.
	Witness *Configuration[S, Y]
}
