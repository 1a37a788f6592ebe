package permute

// Enumerate visits every permutation of xs exactly once, invoking fn for
// each arrangement. The sequence is permuted in place and fn receives the
// live slice: it must not reorder it or retain it across calls (clone to
// keep a snapshot). When Enumerate returns, xs is left in its final
// arrangement, the reverse of the starting one.
//
// fn runs len(xs)! times, so anything beyond a dozen elements is
// impractical. There is no hard length cap; use [Heap] when the traversal
// needs to pause between arrangements.
func Enumerate[S ~[]T, T any](xs S, fn func(S)) {
	enumerate(xs, len(xs), func(s S) Control[struct{}] {
		fn(s)
		return Continue[struct{}]()
	})
}

// EnumerateControl visits permutations like [Enumerate] but lets the
// callback terminate the traversal: returning a [Break] signal stops
// enumeration immediately, with no further swaps or callbacks, and
// EnumerateControl returns that signal with xs left exactly as the final
// callback saw it. If the callback never breaks, the [Continue] signal is
// returned after all len(xs)! visits.
func EnumerateControl[S ~[]T, T, B any](xs S, fn func(S) Control[B]) Control[B] {
	return enumerate(xs, len(xs), fn)
}

// enumerate permutes the first n elements of xs, invoking fn with the full
// sequence after every rearrangement. Small prefixes are unrolled; larger
// ones recurse on n-1, interleaving the level's swaps.
func enumerate[S ~[]T, T, B any](xs S, n int, fn func(S) Control[B]) Control[B] {
	switch n {
	case 0, 1:
		return fn(xs)
	case 2:
		// [a b], [b a]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[1] = xs[1], xs[0]
		return fn(xs)
	case 3:
		// [a b c], [b a c], [c a b], [a c b], [b c a], [c b a]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[1] = xs[1], xs[0]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[2] = xs[2], xs[0]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[1] = xs[1], xs[0]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[2] = xs[2], xs[0]
		if c := fn(xs); c.IsBreak() {
			return c
		}
		xs[0], xs[1] = xs[1], xs[0]
		return fn(xs)
	default:
		for i := 0; i < n-1; i++ {
			if c := enumerate(xs, n-1, fn); c.IsBreak() {
				return c
			}
			// Even prefix lengths rotate the swap partner, odd ones pin
			// it to the front, mirroring the resumable engine's levels.
			j := 0
			if n%2 == 0 {
				j = i
			}
			xs[j], xs[n-1] = xs[n-1], xs[j]
		}
		return enumerate(xs, n-1, fn)
	}
}
