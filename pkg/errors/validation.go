package errors

import (
	"strings"
	"unicode"

	"github.com/matzehuels/permute/pkg/permute"
)

// Orders accepted by the enumeration surfaces.
const (
	OrderHeap = "heap"
	OrderLex  = "lex"
)

// MaxElements is the longest sequence the CLI and API accept. It matches
// the resumable engine's cap and is enforced for both orders so that a
// request can switch orders without changing its size limits.
const MaxElements = permute.MaxLen

// maxElementLength bounds a single element's length. Elements end up in
// cache keys, log lines and DOT labels, so unbounded values are rejected
// early.
const maxElementLength = 256

// ValidateOrder validates an enumeration order name.
func ValidateOrder(order string) error {
	switch order {
	case OrderHeap, OrderLex:
		return nil
	case "":
		return New(ErrCodeInvalidOrder, "order cannot be empty")
	default:
		return New(ErrCodeInvalidOrder, "unknown order %q (valid: heap, lex)", order)
	}
}

// ValidateElements validates a sequence of elements for enumeration.
//
// The validation rules are intentionally conservative:
//   - At most MaxElements elements
//   - No control characters
//   - No null bytes
//   - Maximum element length of 256 characters
//
// An empty sequence is valid and has exactly one (empty) arrangement.
func ValidateElements(elements []string) error {
	if len(elements) > MaxElements {
		return New(ErrCodeSequenceTooLong, "%d elements exceed the maximum of %d", len(elements), MaxElements)
	}

	for i, el := range elements {
		if len(el) > maxElementLength {
			return New(ErrCodeInvalidElements, "element %d too long (max %d characters)", i, maxElementLength)
		}
		if strings.Contains(el, "\x00") {
			return New(ErrCodeInvalidElements, "element %d contains a null byte", i)
		}
		for _, r := range el {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidElements, "element %d contains control characters", i)
			}
		}
	}

	return nil
}

// ValidateBatchSize validates the number of arrangements requested from a
// resumable enumeration in one call.
func ValidateBatchSize(n int) error {
	const maxBatch = 10000
	if n < 1 {
		return New(ErrCodeInvalidInput, "batch size must be at least 1")
	}
	if n > maxBatch {
		return New(ErrCodeInvalidInput, "batch size too large (max %d)", maxBatch)
	}
	return nil
}

// ValidateCountInput validates the n of an n! computation. The bound keeps
// arbitrary-precision factorials at an answerable size.
func ValidateCountInput(n int) error {
	const maxCount = 10000
	if n < 0 {
		return New(ErrCodeInvalidInput, "cannot count permutations of a negative length")
	}
	if n > maxCount {
		return New(ErrCodeInvalidInput, "length too large (max %d)", maxCount)
	}
	return nil
}
