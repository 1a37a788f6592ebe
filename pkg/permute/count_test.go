package permute

import (
	"slices"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialBig(t *testing.T) {
	for n := 0; n <= 20; n++ {
		if got, want := FactorialBig(n).Uint64(), Factorial(n); got != want {
			t.Errorf("FactorialBig(%d) = %d, want %d", n, got, want)
		}
	}

	// Past 20 the uint64 version wraps but the big version stays exact.
	if got, want := FactorialBig(21).String(), "51090942171709440000"; got != want {
		t.Errorf("FactorialBig(21) = %s, want %s", got, want)
	}
	if got, want := FactorialBig(25).String(), "15511210043330985984000000"; got != want {
		t.Errorf("FactorialBig(25) = %s, want %s", got, want)
	}
}

func TestIdentity(t *testing.T) {
	if got := Identity(5); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Identity(5) = %v", got)
	}
	if got := Identity(0); len(got) != 0 {
		t.Errorf("Identity(0) = %v, want empty", got)
	}
	if got := Identity(-3); len(got) != 0 {
		t.Errorf("Identity(-3) = %v, want empty", got)
	}
}

func TestPermutations_All(t *testing.T) {
	input := []int{1, 2, 3}
	got := Permutations(input, 0)

	want := [][]int{
		{1, 2, 3}, {2, 1, 3}, {3, 1, 2}, {1, 3, 2}, {2, 3, 1}, {3, 2, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d arrangements, want %d", len(got), len(want))
	}
	for i := range got {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("arrangement %d = %v, want %v", i, got[i], want[i])
		}
	}

	// The input is never disturbed.
	if !slices.Equal(input, []int{1, 2, 3}) {
		t.Errorf("input was modified: %v", input)
	}
}

func TestPermutations_Limit(t *testing.T) {
	got := Permutations(Identity(10), 5)
	if len(got) != 5 {
		t.Errorf("got %d arrangements with limit 5, want 5", len(got))
	}

	// Returned slices are independent allocations.
	got[0][0] = 99
	if got[1][0] == 99 {
		t.Error("arrangements share backing storage")
	}
}

func TestPermutations_EdgeCases(t *testing.T) {
	if got := Permutations([]int{}, 0); len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("empty input: got %v, want one empty arrangement", got)
	}
	if got := Permutations([]string{"x"}, 0); len(got) != 1 || !slices.Equal(got[0], []string{"x"}) {
		t.Errorf("single element: got %v, want [[x]]", got)
	}
}
