package linkedlist

import "iter"

// FromSlice builds a list holding the values of s in the same order.
// Values are copied; s is neither retained nor modified.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	// Pushing in reverse onto the head keeps every insert O(1).
	for i := len(s) - 1; i >= 0; i-- {
		l.PushFront(s[i])
	}
	return l
}

// Of builds a list from its arguments, in order.
func Of[T any](values ...T) *List[T] {
	return FromSlice(values)
}

// Collect builds a list from the values yielded by seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	return FromSlice(buf)
}

// IntoSlice moves every value out of the list into a new slice, in order.
// The list is consumed and left empty.
func (l *List[T]) IntoSlice() []T {
	out := make([]T, 0, l.size)
	for {
		v, ok := l.PopFront()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
