package linkedlist

// Equal reports whether a and b hold the same number of values and every pair of
// corresponding values compares equal with ==. A nil list is equal to an empty one.
//
// Element equality is only as strong as the element type's ==: a list holding a
// floating point NaN is not equal to itself.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	var na *node[T1]
	var nb *node[T2]
	var sa, sb int
	if a != nil {
		na, sa = a.head, a.size
	}
	if b != nil {
		nb, sb = b.head, b.size
	}
	if sa != sb {
		return false
	}
	for na != nil && nb != nil {
		if !eq(na.value, nb.value) {
			return false
		}
		na, nb = na.next, nb.next
	}
	// Both chains must end together.
	return na == nil && nb == nil
}
