// Package permute rearranges slices through their permutations in place.
//
// # Overview
//
// Three engines cover the common shapes of permutation work:
//
//   - [Heap]: a resumable stepper. Every call to [Heap.Next] performs a
//     single swap, so consecutive arrangements differ minimally and a
//     traversal can be paused, inspected, and resumed at any point.
//   - [Enumerate] / [EnumerateControl]: recursive visitors that hand each
//     arrangement to a callback. The control variant lets the callback
//     stop enumeration early and carry a result back to the caller.
//   - [NextLexical] / [PrevLexical]: single-step reordering to the
//     adjacent arrangement in lexicographic order. The ordering is purely
//     positional, so a traversal can resume from any stored arrangement
//     with no engine state at all.
//
// The stepper and the visitors produce arrangements in the same order:
// both implement Heap's algorithm, which visits all n! permutations with
// exactly one swap between consecutive ones. Lexicographic stepping
// visits a different order and may move many elements per step.
//
// # In-Place Contract
//
// All engines permute the caller's slice directly; only [Heap.All] and
// [Permutations] hand out owned copies. While an engine holds a slice,
// nothing else may reorder it, and none of the engines are safe for
// concurrent use. Callbacks receive the live slice: they may read it and
// replace individual elements, but reordering it mid-enumeration leaves
// the traversal undefined.
//
// # Scale
//
// A sequence of n elements has n! arrangements: 10! is 3.6 million, 13!
// passes six billion, and 21! no longer fits in uint64. Use [Factorial]
// or [FactorialBig] to size a traversal before starting it. [Heap]
// additionally rejects sequences longer than [MaxLen] elements, a bound
// already far past what a full traversal can visit.
//
// # Basic Usage
//
// Step through arrangements with the resumable engine:
//
//	data := []string{"a", "b", "c"}
//	h, err := permute.NewHeap(data)
//	if err != nil {
//		return err
//	}
//	for p, ok := h.Next(); ok; p, ok = h.Next() {
//		fmt.Println(p)
//	}
//
// Search with early termination:
//
//	found := permute.EnumerateControl(nums, func(p []int) permute.Control[[]int] {
//		if isSorted(p) {
//			return permute.Break(slices.Clone(p))
//		}
//		return permute.Continue[[]int]()
//	})
//	if answer, ok := found.Value(); ok {
//		fmt.Println("first sorted arrangement:", answer)
//	}
//
// Resume a lexicographic walk from a stored cursor:
//
//	cursor := loadCursor() // e.g. []int{2, 0, 1}
//	if permute.NextLexical(cursor) {
//		saveCursor(cursor)
//	}
package permute
