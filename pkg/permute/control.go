package permute

// Control steers [EnumerateControl] from inside its callback. The zero
// value continues enumeration; the signal built by [Break] stops it and
// carries a result of type B back to the caller.
type Control[B any] struct {
	value B
	brk   bool
}

// Continue returns the signal that keeps enumeration running.
func Continue[B any]() Control[B] {
	return Control[B]{}
}

// Break returns the signal that stops enumeration, carrying v back to the
// [EnumerateControl] caller.
func Break[B any](v B) Control[B] {
	return Control[B]{value: v, brk: true}
}

// IsBreak reports whether the signal stops enumeration.
func (c Control[B]) IsBreak() bool {
	return c.brk
}

// Value returns the result carried by a Break signal. For a Continue
// signal it returns the zero value and false.
func (c Control[B]) Value() (B, bool) {
	if !c.brk {
		var zero B
		return zero, false
	}
	return c.value, true
}
