package linkedlist

import "github.com/emirpasic/gods/containers"

// containerView adapts a List to the gods Container interface.
type containerView[T any] struct {
	list *List[T]
}

var _ containers.Container = containerView[int]{}

// Container returns a view of l that satisfies containers.Container from github.com/emirpasic/gods.
// The view shares l; changes through either are visible in both.
func (l *List[T]) Container() containers.Container {
	return containerView[T]{list: l}
}

func (c containerView[T]) Empty() bool {
	return c.list.IsEmpty()
}

func (c containerView[T]) Size() int {
	return c.list.Len()
}

func (c containerView[T]) Clear() {
	c.list.Clear()
}

// Values returns the values in list order, boxed. The list is not consumed.
func (c containerView[T]) Values() []interface{} {
	out := make([]interface{}, 0, c.list.Len())
	for n := c.list.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (c containerView[T]) String() string {
	return "LinkedList\n" + c.list.String()
}
