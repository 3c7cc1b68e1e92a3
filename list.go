package linkedlist

// node is a single link of the chain. It is reachable from exactly one predecessor, or from the list head.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
//
// List is not safe for concurrent use; callers sharing a List across goroutines must guard it themselves.
type List[T any] struct {
	head *node[T]
	size int
	// mods counts structural changes, used by Iter and IterMut to detect modification during traversal.
	mods uint64
}

// New creates a new empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first value without removing it.
func (l *List[T]) Front() (T, bool) {
	var d T
	if l.head == nil {
		return d, false
	}
	return l.head.value, true
}

// Back returns the last value without removing it. There is no tail pointer, so it walks the whole chain.
func (l *List[T]) Back() (T, bool) {
	var d T
	if l.head == nil {
		return d, false
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	return last.value, true
}

// PushFront inserts value at the head of the list.
func (l *List[T]) PushFront(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.size++
	l.mods++
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (T, bool) {
	var d T
	if l.head == nil {
		return d, false
	}
	n := l.head
	l.head = n.next
	l.size--
	l.mods++
	return unlink(n), true
}

// PushBack appends value at the end of the list. It walks the whole chain.
func (l *List[T]) PushBack(value T) {
	if l.head == nil {
		l.PushFront(value)
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = &node[T]{value: value}
	l.size++
	l.mods++
}

// PopBack removes and returns the last value. It walks to the second-to-last node.
func (l *List[T]) PopBack() (T, bool) {
	var d T
	if l.head == nil {
		return d, false
	}
	if l.head.next == nil {
		return l.PopFront()
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	n := prev.next
	prev.next = nil
	l.size--
	l.mods++
	return unlink(n), true
}

// Clear releases every node, front to back, and leaves the list empty.
// Teardown is a loop so stack usage stays constant regardless of length.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		unlink(n)
	}
	l.size = 0
	l.mods++
}

// unlink detaches n from whatever it pointed to and returns its value.
// The node's fields are zeroed so a stale reference does not keep the rest of the chain alive.
func unlink[T any](n *node[T]) T {
	var d T
	v := n.value
	n.value = d
	n.next = nil
	return v
}
