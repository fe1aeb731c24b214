package palindrome_test

import (
	"fmt"

	"github.com/katalvlaran/pushy/palindrome"
	"github.com/katalvlaran/pushy/pda"
)

// ExampleRecognize runs every variant on the same input.
func ExampleRecognize() {
	in, err := palindrome.Parse("0110")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range palindrome.Variants {
		rep, err := palindrome.Recognize(v, in)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-9s %s\n", v, rep.Verdict)
	}
	// Output:
	// bottom-up ACCEPTED
	// grammar   ACCEPTED
	// simple    ACCEPTED
}

// ExampleBottomUp prints the frontier before each symbol, like the classic
// demonstration program, and the final verdict.
func ExampleBottomUp() {
	res, err := pda.Run[palindrome.State, palindrome.Symbol](
		palindrome.BottomUp{},
		[]palindrome.Symbol{palindrome.One, palindrome.One},
		pda.WithOnStep(func(s pda.Snapshot) error {
			fmt.Println(s)
			return nil
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if res.Verdict == pda.Accepted {
		fmt.Println("The input is accepted")
	} else {
		fmt.Println("The input is not accepted")
	}
	// Output:
	// [(q0, [EOS])]
	// [(q1, [EOS 1]) (q2, [EOS])]
	// [(q1, [EOS 1 1]) (q2, [EOS]) (q2, [EOS 1])]
	// [(q3, [])]
	// The input is accepted
}

// ExampleGrammar prints the grammar the grammar-driven recognizer uses.
func ExampleGrammar() {
	fmt.Print(palindrome.Grammar())
	// Output:
	// S -> 0 S 0 | 1 S 1 | 0 | 1 | ε
}
