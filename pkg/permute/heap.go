package permute

import (
	"errors"
	"iter"
	"slices"
)

// MaxLen is the longest sequence the resumable engine accepts.
//
// The per-level swap counters live in a fixed array so that stepping never
// allocates. Sixteen elements already yield 16! (about 2×10^13)
// arrangements, far beyond what a full traversal can visit, so the cap
// costs nothing in practice. The recursive [Enumerate] family carries no
// such cap.
const MaxLen = 16

// notStarted marks an engine that has not yet produced its first arrangement.
const notStarted = ^uint8(0)

// ErrTooLong is returned by [NewHeap] when the sequence has more than
// [MaxLen] elements.
var ErrTooLong = errors.New("permute: sequence longer than MaxLen elements")

// Heap steps a sequence through all of its permutations in place using
// Heap's algorithm. Each step swaps exactly two elements, so consecutive
// arrangements differ minimally, and the engine's state is a handful of
// bytes, making traversals cheap to pause and resume.
//
// The engine holds the caller's slice for its whole lifetime. Nothing else
// may reorder the elements between calls to Next, and a Heap must not be
// used from multiple goroutines.
//
// The zero value is not usable; construct with [NewHeap].
type Heap[S ~[]T, T any] struct {
	data S
	// c[i] counts the swaps performed at level i, which permutes the
	// prefix of length i+2.
	c [MaxLen - 1]uint8
	// n is the level where the next step resumes scanning, or notStarted
	// before the first call to Next.
	n uint8
}

// NewHeap wraps data in a permutation engine. The slice is held by
// reference and rearranged in place by [Heap.Next]; it is returned to the
// caller's control once the traversal is exhausted or abandoned.
//
// Sequences longer than [MaxLen] are rejected with [ErrTooLong]. Empty and
// single-element sequences are fine and yield exactly one arrangement.
func NewHeap[S ~[]T, T any](data S) (*Heap[S, T], error) {
	if len(data) > MaxLen {
		return nil, ErrTooLong
	}
	return &Heap[S, T]{data: data, n: notStarted}, nil
}

// Next advances the sequence to its next arrangement and returns it.
//
// The first call returns the sequence exactly as the caller arranged it;
// every later call performs one swap. Once all n! arrangements have been
// visited, Next returns (nil, false) and keeps doing so; the sequence is
// then left in its final arrangement, the reverse of the starting one.
//
// The returned slice aliases the engine's sequence and is only valid in
// its current arrangement until the next call; clone it to keep a
// snapshot.
func (h *Heap[S, T]) Next() (S, bool) {
	if h.n == notStarted {
		h.n = 0
		return h.data, true
	}
	for int(h.n)+1 < len(h.data) {
		i := int(h.n)
		if h.c[i] <= uint8(i) {
			// Levels permuting an even-length prefix pair the last
			// element with a moving partner; odd-length prefixes always
			// swap against the first element.
			j := 0
			if i%2 == 0 {
				j = int(h.c[i])
			}
			h.data[j], h.data[i+1] = h.data[i+1], h.data[j]
			h.c[i]++
			h.n = 0
			return h.data, true
		}
		h.c[i] = 0
		h.n++
	}
	return nil, false
}

// Reset rearms the engine: the next call to Next begins a fresh traversal.
//
// Only the bookkeeping is cleared. The elements keep whatever order the
// previous traversal left them in, so after an exhausted traversal a reset
// engine enumerates from the reversed arrangement, not the original one.
// Callers wanting the original order must restore it themselves before
// resetting.
func (h *Heap[S, T]) Reset() {
	clear(h.c[:])
	h.n = notStarted
}

// Slice returns the engine's sequence in its current arrangement. The
// in-place contract applies: reading elements is fine, reordering them
// mid-traversal is not.
func (h *Heap[S, T]) Slice() S {
	return h.data
}

// All returns a single-use iterator over the remaining arrangements,
// yielding an owned copy of each one. Unlike Next, the yielded slices do
// not alias the engine's sequence and may be retained.
//
// Ranging to completion exhausts the engine; use [Heap.Reset] to traverse
// again. Breaking out of the range leaves the engine resumable at the
// arrangement after the last yielded one.
func (h *Heap[S, T]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			next, ok := h.Next()
			if !ok {
				return
			}
			if !yield(slices.Clone(next)) {
				return
			}
		}
	}
}
