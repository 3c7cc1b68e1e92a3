package linkedlist

import "iter"

const modifiedDuringIteration = "linkedlist: list structurally modified during iteration"

// Iter walks a list front to back, yielding copies of the values.
// Next panics if the chain was changed since the Iter was created.
type Iter[T any] struct {
	list *List[T]
	node *node[T]
	mods uint64
}

// Iter returns a read-only iterator positioned at the first value.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, node: l.head, mods: l.mods}
}

// Next returns the current value and advances. Once exhausted it keeps returning false.
func (it *Iter[T]) Next() (T, bool) {
	var d T
	if it.node == nil {
		return d, false
	}
	it.list.checkMods(it.mods)
	n := it.node
	it.node = n.next
	return n.value, true
}

// All returns a sequence over the values in list order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// IterMut walks a list front to back, yielding a pointer to each stored value so it can be
// modified in place. Only values can change through it, never the chain.
//
// At most one IterMut, and no other access, may be live for a list at a time.
// Pointers returned by Next must not be kept past the node's removal.
type IterMut[T any] struct {
	list *List[T]
	node *node[T]
	mods uint64
}

// IterMut returns a read-write iterator positioned at the first value.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{list: l, node: l.head, mods: l.mods}
}

// Next returns a pointer to the current value and advances. Once exhausted it keeps returning nil, false.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.node == nil {
		return nil, false
	}
	it.list.checkMods(it.mods)
	n := it.node
	it.node = n.next
	return &n.value, true
}

// AllMut returns a sequence of pointers to the stored values in list order.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// IntoIter owns a chain taken from a list and hands its values out one PopFront at a time.
type IntoIter[T any] struct {
	list List[T]
}

// IntoIter moves every node out of l into a consuming iterator. l is left empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{list: List[T]{head: l.head, size: l.size}}
	l.head = nil
	l.size = 0
	l.mods++
	return it
}

// Next pops and returns the next value.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// Len returns the number of values not yet returned.
func (it *IntoIter[T]) Len() int {
	return it.list.Len()
}

// SizeHint returns the exact bounds on the remaining count; both are always equal to Len.
func (it *IntoIter[T]) SizeHint() (lower, upper int) {
	n := it.list.Len()
	return n, n
}

// Drain moves every node out of l, like IntoIter, and returns a sequence that pops them in order.
// Values not consumed by an early break stay in the sequence and are yielded by a later range over it.
func (l *List[T]) Drain() iter.Seq[T] {
	it := l.IntoIter()
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[T]) checkMods(mods uint64) {
	if l.mods != mods {
		panic(modifiedDuringIteration)
	}
}
