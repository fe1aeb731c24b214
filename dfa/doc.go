// Package dfa provides deterministic finite automata and reactive state
// machines, the finite-state counterparts of package pda.
//
// What
//
//   - DFA[S, I]: start state, final states and a partial transition table.
//     A missing transition makes the run STUCK; it keeps reading input
//     but can no longer accept.
//   - Reactive[S, I]: a total transition function with no final states;
//     Run returns the state after every input (a Mealy-style machine whose
//     output is its state).
//   - BinaryString() and MagicDoor() are the two classic examples.
//
// Observers
//
//	WithOnStep(fn) receives a Step after every input, which is how a
//	caller prints "The input is: 1" / "The state is now: q2" traces.
//
// Errors
//
//   - ErrNoFinal, ErrDuplicateTransition from New.
//   - ErrNilTransition from NewReactive.
package dfa
