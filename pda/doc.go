// Package pda provides a simulation engine for nondeterministic pushdown
// automata (PDA), answering ACCEPTED or REJECTED for a finite input.
//
// What
//
//   - An Automaton is given by its transition relation: Initial, Step (one
//     input symbol), Epsilon (no input) and Accepts.
//   - Run keeps the frontier: every Configuration (control state + stack)
//     still alive after the symbols read so far.
//   - Nondeterminism is branching, never backtracking: a transition returns
//     all of its successors and the frontier is replaced wholesale each
//     round. A stuck branch returns nothing and disappears.
//   - Table is a ready-made Automaton driven by an explicit rule table
//     (state × input × stack top → successors).
//
// Algorithm
//
//  1. For each input symbol, replace the frontier with the union of Step
//     over all live configurations. An empty frontier rejects at once and
//     the rest of the input is never read (see Report.Consumed).
//  2. Once the input is exhausted: if any configuration accepts, stop with
//     ACCEPTED (first match wins, returned as Result.Witness); otherwise
//     replace the frontier with the union of Epsilon. An empty frontier is
//     REJECTED.
//
// Termination
//
//	Every epsilon transition must strictly shrink the stack, so the epsilon
//	phase runs at most (deepest stack + 1) rounds. NewTable enforces this
//	for tables (ErrEpsilonGrowth). For hand-written automata built
//	elsewhere, WithMaxEpsilonRounds is a watchdog.
//
// Complexity (n = input length, F = peak frontier size, d = deepest stack)
//
//   - Time:   O((n + d) · F · b) where b is the branching of one transition
//   - Memory: O(F) live configurations; stacks share tails, so each
//     successor costs O(1) extra cells.
//
// Usage
//
//	res, err := pda.Run(machine, input,
//	    pda.WithDedup(),
//	    pda.WithOnStep(func(s pda.Snapshot) error {
//	        fmt.Println(s)
//	        return nil
//	    }),
//	)
//	if err != nil {
//	    // ErrNilAutomaton, ErrOptionViolation, ErrEpsilonLimit,
//	    // context errors or a wrapped OnStep error
//	}
//	fmt.Println(res.Verdict) // ACCEPTED or REJECTED
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per round.
//   - WithDedup():              drop duplicate configurations per round.
//   - WithMaxEpsilonRounds(n):  watchdog for the epsilon phase (n ≥ 0).
//   - WithTrace():              keep one Snapshot per round in Report.Trace.
//   - WithOnStep(fn):           observe each frontier; an error aborts.
//
// Errors
//
//   - ErrNilAutomaton     if the automaton is nil.
//   - ErrOptionViolation  if an option value is invalid.
//   - ErrEpsilonLimit     if the epsilon watchdog fires.
//   - ErrNoInitial, ErrNoFinal, ErrEpsilonGrowth from NewTable.
//
// A rejected input is never an error: it is Verdict == Rejected.
package pda
