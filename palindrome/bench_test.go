package palindrome_test

import (
	"testing"

	"github.com/katalvlaran/pushy/palindrome"
	"github.com/katalvlaran/pushy/pda"
)

// longPalindrome returns 0110...0110 of length n (n divisible by 4).
func longPalindrome(n int) []palindrome.Symbol {
	out := make([]palindrome.Symbol, 0, n)
	for len(out) < n {
		out = append(out, palindrome.Zero, palindrome.One, palindrome.One, palindrome.Zero)
	}

	return out
}

func benchmarkVariant(b *testing.B, v palindrome.Variant, opts ...pda.Option) {
	in := longPalindrome(256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = palindrome.Recognize(v, in, opts...)
	}
}

func BenchmarkBottomUp(b *testing.B)      { benchmarkVariant(b, palindrome.BottomUpVariant) }
func BenchmarkBottomUpDedup(b *testing.B) { benchmarkVariant(b, palindrome.BottomUpVariant, pda.WithDedup()) }
func BenchmarkGrammar(b *testing.B)       { benchmarkVariant(b, palindrome.GrammarVariant) }
func BenchmarkSimple(b *testing.B)        { benchmarkVariant(b, palindrome.SimpleVariant) }
