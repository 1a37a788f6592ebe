package permute

import (
	"cmp"
	"slices"
)

// NextLexical reorders xs in place into the arrangement that follows it in
// lexicographic order and reports whether such an arrangement exists. When
// xs is already at its maximal arrangement (sorted descending), it is left
// unchanged and NextLexical returns false; it never wraps around to the
// minimal arrangement.
//
// Starting from an ascending-sorted slice and calling NextLexical until it
// returns false visits all arrangements in lexicographic order. Unlike the
// Heap engines the step needs no state beyond the slice itself, which
// makes it the right tool for resuming a traversal from a stored
// arrangement. Duplicate elements are handled naturally: each distinct
// arrangement appears once.
//
// Sequences of fewer than two elements have no next arrangement.
func NextLexical[S ~[]T, T cmp.Ordered](xs S) bool {
	return NextLexicalFunc(xs, cmp.Compare)
}

// NextLexicalFunc is like [NextLexical] but orders elements by the
// comparison function, which must return a negative number when a sorts
// before b, zero when they are equivalent, and a positive number when a
// sorts after b.
func NextLexicalFunc[S ~[]T, T any](xs S, compare func(a, b T) int) bool {
	// Find the pivot: the last position followed by a larger element.
	// Right of it the sequence is non-increasing and cannot advance.
	i := len(xs) - 1
	for i > 0 && compare(xs[i-1], xs[i]) >= 0 {
		i--
	}
	if i <= 0 {
		return false
	}
	// Swap the pivot with the smallest larger element in the suffix, then
	// reorder the suffix from its maximum to its minimum.
	j := len(xs) - 1
	for compare(xs[j], xs[i-1]) <= 0 {
		j--
	}
	xs[i-1], xs[j] = xs[j], xs[i-1]
	slices.Reverse(xs[i:])
	return true
}

// PrevLexical reorders xs in place into the arrangement that precedes it
// in lexicographic order and reports whether such an arrangement exists.
// When xs is already at its minimal arrangement (sorted ascending), it is
// left unchanged and PrevLexical returns false.
func PrevLexical[S ~[]T, T cmp.Ordered](xs S) bool {
	return PrevLexicalFunc(xs, cmp.Compare)
}

// PrevLexicalFunc is like [PrevLexical] with an explicit comparison
// function; see [NextLexicalFunc] for its contract.
func PrevLexicalFunc[S ~[]T, T any](xs S, compare func(a, b T) int) bool {
	// Stepping backwards is stepping forwards under the reversed order.
	return NextLexicalFunc(xs, func(a, b T) int { return compare(b, a) })
}
