// Package pushy is a small workbench for nondeterministic pushdown automata:
// simulate them breadth-first, build them from tables or grammars, and
// compare a few classic palindrome recognizers against each other.
//
// 🚀 What is in the box?
//
//	• Persistent stacks: O(1) push/pop, branches share their tails
//	• Frontier simulation: every live configuration, one symbol at a time,
//	  then epsilon closure until a branch accepts or all die out
//	• Table-driven PDAs: write the transition table, get an Automaton
//	• Grammar-driven PDAs: write terminal-led productions, get a recognizer
//	• Finite machines: a partial DFA and a total reactive machine
//
// ✨ Why pushy?
//
//   - Generic over state and stack-symbol types
//   - Context cancellation, epsilon watchdog and per-round hooks
//   - Optional deduplication keeps the frontier small on ambiguous inputs
//
// Packages:
//
//	stack/       immutable linked stack shared between branches
//	pda/         Automaton interface, Run, Table
//	grammar/     grammar builder and the derived recognizer
//	palindrome/  three binary-palindrome recognizers and Recognize
//	dfa/         DFA, Reactive, BinaryString, MagicDoor
//	cmd/pushy/   command line front end
//
// Quick start:
//
//	in, _ := palindrome.Parse("0110")
//	rep, err := palindrome.Recognize(palindrome.BottomUpVariant, in)
//	if err != nil { … }
//	fmt.Println(rep.Verdict) // ACCEPTED
package pushy
