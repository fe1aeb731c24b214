package palindrome

import (
	"github.com/katalvlaran/pushy/pda"
)

// BottomUpTable returns the BottomUp machine written out as an explicit
// transition table over the alphabet {0, 1}. It accepts the same language
// as BottomUp and is built from data rather than code.
func BottomUpTable() *pda.Table[State, Symbol] {
	bits := []Symbol{Zero, One}
	tops := []Symbol{Zero, One, EOS}

	var rules []pda.Rule[State, Symbol]
	for _, a := range bits {
		rules = append(rules,
			pda.Rule[State, Symbol]{From: Q0, Input: a, Top: EOS, To: Q1, Push: []Symbol{EOS, a}},
			pda.Rule[State, Symbol]{From: Q0, Input: a, Top: EOS, To: Q2, Push: []Symbol{EOS}},
			pda.Rule[State, Symbol]{From: Q1, Input: a, Top: a, To: Q2},
			pda.Rule[State, Symbol]{From: Q2, Input: a, Top: a, To: Q2},
		)
		for _, x := range tops {
			rules = append(rules,
				pda.Rule[State, Symbol]{From: Q1, Input: a, Top: x, To: Q1, Push: []Symbol{x, a}},
				pda.Rule[State, Symbol]{From: Q1, Input: a, Top: x, To: Q2, Push: []Symbol{x}},
			)
		}
	}
	rules = append(rules, pda.Rule[State, Symbol]{From: Q2, Epsilon: true, Top: EOS, To: Q3})

	t, err := pda.NewTable([]Config{pda.Config(Q0, EOS)}, []State{Q0, Q3}, rules)
	if err != nil {
		// no epsilon rule above pushes
		panic(err)
	}

	return t
}
