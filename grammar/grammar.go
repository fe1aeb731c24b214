// Package grammar models context-free grammars as plain immutable data and
// turns them into pushdown recognizers for the pda engine.
package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by Builder.Build.
var (
	// ErrNoRules indicates a grammar without a single alternative.
	ErrNoRules = errors.New("grammar: no rules")

	// ErrStartUndefined indicates the start variable has no alternatives.
	ErrStartUndefined = errors.New("grammar: start variable has no rules")

	// ErrUndefinedVariable indicates a reference to a variable with no rules.
	ErrUndefinedVariable = errors.New("grammar: reference to undefined variable")

	// ErrEmptyBody indicates an alternative with no parts; use Epsilon() instead.
	ErrEmptyBody = errors.New("grammar: empty rule body")

	// ErrMisplacedEpsilon indicates epsilon mixed with other parts of a body.
	ErrMisplacedEpsilon = errors.New("grammar: epsilon must be the only part of a body")

	// ErrNotTerminalLed indicates an alternative that starts with a variable.
	// The recognizer reads one terminal per step, so bodies must begin with
	// a terminal or be epsilon.
	ErrNotTerminalLed = errors.New("grammar: rule body must start with a terminal")

	// ErrNilGrammar is returned by NewRecognizer for a nil grammar.
	ErrNilGrammar = errors.New("grammar: grammar is nil")
)

// Variable names a grammar variable (nonterminal), e.g. "S".
type Variable string

// PartKind distinguishes the three kinds of rule parts.
type PartKind int

const (
	// Literal is a terminal symbol.
	Literal PartKind = iota
	// Reference names a variable.
	Reference
	// Empty is the epsilon marker.
	Empty
)

// Part is one element of a rule body.
type Part struct {
	Kind     PartKind
	Terminal string
	Var      Variable
}

// Lit returns a terminal part.
func Lit(terminal string) Part { return Part{Kind: Literal, Terminal: terminal} }

// Ref returns a variable part.
func Ref(v Variable) Part { return Part{Kind: Reference, Var: v} }

// Epsilon returns the epsilon part.
func Epsilon() Part { return Part{Kind: Empty} }

// String renders terminals verbatim, variables by name and epsilon as "ε".
func (p Part) String() string {
	switch p.Kind {
	case Literal:
		return p.Terminal
	case Reference:
		return string(p.Var)
	default:
		return "ε"
	}
}

// Body is one alternative: an ordered sequence of parts.
type Body []Part

// IsEpsilon reports whether b is the epsilon alternative.
func (b Body) IsEpsilon() bool { return len(b) == 1 && b[0].Kind == Empty }

// String joins the parts with spaces.
func (b Body) String() string {
	parts := make([]string, len(b))
	for i, p := range b {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}

// Grammar is an immutable context-free grammar: a start variable and, per
// variable, its ordered alternatives.
type Grammar struct {
	start Variable
	rules map[Variable][]Body
}

// Start returns the start variable.
func (g *Grammar) Start() Variable { return g.start }

// Variables returns every variable with rules, sorted by name.
func (g *Grammar) Variables() []Variable {
	out := make([]Variable, 0, len(g.rules))
	for v := range g.rules {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Alternatives returns a copy of v's rule bodies in declaration order.
func (g *Grammar) Alternatives(v Variable) []Body {
	src := g.rules[v]
	out := make([]Body, len(src))
	for i, b := range src {
		out[i] = append(Body(nil), b...)
	}

	return out
}

// HasEpsilon reports whether v has an epsilon alternative.
func (g *Grammar) HasEpsilon(v Variable) bool {
	for _, b := range g.rules[v] {
		if b.IsEpsilon() {
			return true
		}
	}

	return false
}

// String prints one line per variable, start variable first:
//
//	S -> 0 S 0 | 1 S 1 | ε
func (g *Grammar) String() string {
	vars := g.Variables()
	sort.SliceStable(vars, func(i, j int) bool { return vars[i] == g.start && vars[j] != g.start })

	var sb strings.Builder
	for _, v := range vars {
		alts := make([]string, len(g.rules[v]))
		for i, b := range g.rules[v] {
			alts[i] = b.String()
		}
		fmt.Fprintf(&sb, "%s -> %s\n", v, strings.Join(alts, " | "))
	}

	return sb.String()
}

// Builder collects rules; Build validates them into a Grammar.
type Builder struct {
	start Variable
	order []Variable
	rules map[Variable][]Body
}

// NewBuilder starts a grammar with the given start variable.
func NewBuilder(start Variable) *Builder {
	return &Builder{start: start, rules: make(map[Variable][]Body)}
}

// Rule adds the alternative v -> parts. Call it once per alternative.
func (b *Builder) Rule(v Variable, parts ...Part) *Builder {
	if _, ok := b.rules[v]; !ok {
		b.order = append(b.order, v)
	}
	b.rules[v] = append(b.rules[v], append(Body(nil), parts...))

	return b
}

// Build validates the collected rules and returns an immutable Grammar.
// Returns ErrNoRules, ErrStartUndefined, ErrEmptyBody, ErrMisplacedEpsilon,
// ErrNotTerminalLed or ErrUndefinedVariable, wrapped with the offending rule.
func (b *Builder) Build() (*Grammar, error) {
	if len(b.rules) == 0 {
		return nil, ErrNoRules
	}
	if _, ok := b.rules[b.start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartUndefined, b.start)
	}

	g := &Grammar{start: b.start, rules: make(map[Variable][]Body, len(b.rules))}
	for _, v := range b.order {
		for _, body := range b.rules[v] {
			if err := b.validate(v, body); err != nil {
				return nil, err
			}
			g.rules[v] = append(g.rules[v], append(Body(nil), body...))
		}
	}

	return g, nil
}

func (b *Builder) validate(v Variable, body Body) error {
	if len(body) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyBody, v)
	}
	for i, p := range body {
		switch p.Kind {
		case Empty:
			if len(body) > 1 {
				return fmt.Errorf("%w: %s -> %s", ErrMisplacedEpsilon, v, body)
			}
		case Reference:
			if i == 0 {
				return fmt.Errorf("%w: %s -> %s", ErrNotTerminalLed, v, body)
			}
			if _, ok := b.rules[p.Var]; !ok {
				return fmt.Errorf("%w: %s in %s -> %s", ErrUndefinedVariable, p.Var, v, body)
			}
		}
	}

	return nil
}
