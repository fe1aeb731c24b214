package grammar

import (
	"fmt"

	"github.com/katalvlaran/pushy/pda"
)

// State is a control state of the grammar-driven recognizer.
type State uint8

const (
	// Matching (q0) expands variables and matches terminals.
	Matching State = iota
	// Done (q1) is the only accepting state.
	Done
)

// String returns "q0" or "q1".
func (s State) String() string { return fmt.Sprintf("q%d", uint8(s)) }

type symbolKind uint8

const (
	terminalKind symbolKind = iota
	variableKind
	bottomKind
)

// Symbol is a stack or input symbol of the recognizer: a terminal, a
// variable marker, or the end-of-stack sentinel.
type Symbol struct {
	kind symbolKind
	name string
}

// Bottom is the end-of-stack sentinel.
var Bottom = Symbol{kind: bottomKind}

// T returns the terminal symbol t, as fed to the recognizer as input.
func T(t string) Symbol { return Symbol{kind: terminalKind, name: t} }

// Marker returns the stack marker standing for variable v.
func Marker(v Variable) Symbol { return Symbol{kind: variableKind, name: string(v)} }

// Terminals converts each string to a terminal symbol.
func Terminals(ts ...string) []Symbol {
	out := make([]Symbol, len(ts))
	for i, t := range ts {
		out[i] = T(t)
	}

	return out
}

// IsVariable reports whether s is a variable marker.
func (s Symbol) IsVariable() bool { return s.kind == variableKind }

// String returns the terminal, the variable name, or "EOS".
func (s Symbol) String() string {
	if s.kind == bottomKind {
		return "EOS"
	}

	return s.name
}

// Recognizer is the pushdown automaton derived from a Grammar. It keeps the
// not-yet-matched suffix of a leftmost derivation on the stack.
//
// Step: a terminal on top equal to the input is popped. A variable on top
// is replaced by the reversed tail of every alternative led by the input
// terminal, one successor per alternative; an epsilon alternative retries
// the step with the variable popped. Epsilon: EOS on top is popped and the
// machine moves to Done; a variable with an epsilon alternative is popped.
// Both epsilon moves shrink the stack.
type Recognizer struct {
	g *Grammar
}

// NewRecognizer returns the recognizer for g.
// Returns ErrNilGrammar if g is nil.
func NewRecognizer(g *Grammar) (*Recognizer, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}

	return &Recognizer{g: g}, nil
}

// Grammar returns the grammar the recognizer was built from.
func (r *Recognizer) Grammar() *Grammar { return r.g }

// Initial returns {(q0, [EOS S]), (q1, [])}. The second start state accepts
// the empty input without any epsilon round.
func (r *Recognizer) Initial() []pda.Configuration[State, Symbol] {
	return []pda.Configuration[State, Symbol]{
		pda.Config(Matching, Bottom, Marker(r.g.start)),
		pda.Config[State, Symbol](Done),
	}
}

// Step consumes one terminal.
func (r *Recognizer) Step(c pda.Configuration[State, Symbol], in Symbol) []pda.Configuration[State, Symbol] {
	if c.State != Matching {
		return nil
	}
	top, ok := c.Stack.Peek()
	if !ok {
		return nil
	}
	rest, _, _ := c.Stack.Pop()

	switch {
	case top == in:
		return []pda.Configuration[State, Symbol]{{State: Matching, Stack: rest}}
	case top.IsVariable():
		var out []pda.Configuration[State, Symbol]
		for _, body := range r.g.rules[Variable(top.name)] {
			if body.IsEpsilon() {
				out = append(out, r.Step(pda.Configuration[State, Symbol]{State: Matching, Stack: rest}, in)...)
				continue
			}
			if T(body[0].Terminal) != in {
				continue
			}
			next := rest
			for i := len(body) - 1; i > 0; i-- {
				next = next.Push(partSymbol(body[i]))
			}
			out = append(out, pda.Configuration[State, Symbol]{State: Matching, Stack: next})
		}
		return out
	default:
		return nil
	}
}

// Epsilon pops EOS into Done, or pops a variable that may derive ε.
func (r *Recognizer) Epsilon(c pda.Configuration[State, Symbol]) []pda.Configuration[State, Symbol] {
	if c.State != Matching {
		return nil
	}
	top, ok := c.Stack.Peek()
	if !ok {
		return nil
	}
	rest, _, _ := c.Stack.Pop()

	switch {
	case top == Bottom:
		return []pda.Configuration[State, Symbol]{{State: Done, Stack: rest}}
	case top.IsVariable() && r.g.HasEpsilon(Variable(top.name)):
		return []pda.Configuration[State, Symbol]{{State: Matching, Stack: rest}}
	default:
		return nil
	}
}

// Accepts reports whether c is in Done.
func (r *Recognizer) Accepts(c pda.Configuration[State, Symbol]) bool {
	return c.State == Done
}

func partSymbol(p Part) Symbol {
	if p.Kind == Reference {
		return Marker(p.Var)
	}

	return T(p.Terminal)
}
