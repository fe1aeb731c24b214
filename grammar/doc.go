// Package grammar provides a context-free grammar model and the pushdown
// recognizer derived from it.
//
// What
//
//   - Grammar: a start Variable and, per variable, ordered alternatives.
//     Each alternative (Body) is a sequence of Parts: Lit(terminal),
//     Ref(variable) or Epsilon(). Grammars are built once with a Builder,
//     validated, and never modified afterwards.
//   - Recognizer: a pda.Automaton over Symbol (terminals, variable markers
//     and the end-of-stack sentinel Bottom) with states q0 (Matching) and
//     q1 (Done). The initial stack is [EOS S]; the input is accepted when a
//     branch pops EOS after the last terminal.
//
// Shape requirements
//
//	Every non-epsilon alternative must begin with a terminal
//	(ErrNotTerminalLed). With that shape each consuming step reads exactly
//	one terminal and each epsilon step pops exactly one symbol, so the
//	simulation always terminates.
//
// Errors
//
//   - ErrNoRules, ErrStartUndefined, ErrUndefinedVariable, ErrEmptyBody,
//     ErrMisplacedEpsilon, ErrNotTerminalLed from Builder.Build;
//     ErrNilGrammar from NewRecognizer.
//
// Usage
//
//	g, err := grammar.NewBuilder("S").
//	    Rule("S", grammar.Lit("0"), grammar.Ref("S"), grammar.Lit("0")).
//	    Rule("S", grammar.Lit("1"), grammar.Ref("S"), grammar.Lit("1")).
//	    Rule("S", grammar.Epsilon()).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, _ := grammar.NewRecognizer(g)
//	res, _ := pda.Run[grammar.State, grammar.Symbol](r, grammar.Terminals("0", "1", "1", "0"))
//	fmt.Println(res.Verdict) // ACCEPTED
//
// Grammar text syntax is deliberately absent: grammars are Go values.
package grammar
