package permute

import (
	"math/big"
	"slices"
)

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n and the
// number of permutations of n elements. For n <= 1, Factorial returns 1.
//
// The result is exact while it fits in uint64, which holds through n = 20;
// past that the product silently wraps. Use [FactorialBig] when n may be
// larger.
func Factorial(n int) uint64 {
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result
}

// FactorialBig returns n! as an arbitrary-precision integer, exact for any
// n. For n <= 1, FactorialBig returns 1.
func FactorialBig(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// Identity returns the identity permutation [0, 1, 2, ..., n-1], the usual
// starting arrangement for index-based enumeration.
//
// For n <= 0, Identity returns an empty slice.
func Identity(n int) []int {
	result := make([]int, max(n, 0))
	for i := range result {
		result[i] = i
	}
	return result
}

// Permutations collects permutations of xs in traversal order, leaving xs
// untouched by working on an internal copy. Each returned slice is a
// separate allocation, safe to modify without affecting the others.
//
// If limit > 0, Permutations returns at most limit arrangements. If
// limit <= 0, it returns all len(xs)! of them.
//
// Edge cases follow the engines:
//   - empty input: one empty arrangement
//   - single element: one single-element arrangement
//
// For more than a dozen elements the number of arrangements runs into the
// billions. Always set a limit there, or the result will exhaust memory.
func Permutations[S ~[]T, T any](xs S, limit int) []S {
	capacity := limit
	if capacity <= 0 && len(xs) <= 12 {
		capacity = int(Factorial(len(xs)))
	}
	result := make([]S, 0, max(capacity, 0))

	work := slices.Clone(xs)
	EnumerateControl(work, func(s S) Control[struct{}] {
		result = append(result, slices.Clone(s))
		if limit > 0 && len(result) >= limit {
			return Break(struct{}{})
		}
		return Continue[struct{}]()
	})
	return result
}
