package linkedlist

import (
	"fmt"
	"log/slog"
	"strings"
)

// String renders the list as "[v1 v2 ...]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// LogValue implements slog.LogValuer so a list can be passed straight to a logging call.
func (l *List[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("len", l.size),
		slog.Any("values", l.values()),
	)
}

// values copies the stored values into a new slice without consuming the list.
func (l *List[T]) values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
