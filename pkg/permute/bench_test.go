package permute

import "testing"

// The engines are compared on seven elements (5040 arrangements), small
// enough to keep iterations fast and large enough to exercise the general
// recursion path.

func BenchmarkHeapNext(b *testing.B) {
	data := Identity(7)
	b.ReportAllocs()
	for b.Loop() {
		h, _ := NewHeap(data)
		for _, ok := h.Next(); ok; _, ok = h.Next() {
		}
	}
}

func BenchmarkEnumerate(b *testing.B) {
	data := Identity(7)
	b.ReportAllocs()
	for b.Loop() {
		Enumerate(data, func([]int) {})
	}
}

func BenchmarkNextLexical(b *testing.B) {
	data := Identity(7)
	b.ReportAllocs()
	for b.Loop() {
		for NextLexical(data) {
		}
		// Parked at the maximal arrangement: walk back down so every
		// iteration does the same work.
		for PrevLexical(data) {
		}
	}
}
