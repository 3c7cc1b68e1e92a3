package linkedlist

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		list *List[int]
		want string
	}{
		{name: "empty", list: New[int](), want: "[]"},
		{name: "single", list: Of(4), want: "[4]"},
		{name: "several", list: Of(4, 5, 6), want: "[4 5 6]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.String(); got != tt.want {
				t.Errorf("String() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("built", "list", Of(1, 2))

	out := buf.String()
	if !strings.Contains(out, "list.len=2") {
		t.Errorf("missing len attribute in %q", out)
	}
	if !strings.Contains(out, "list.values=\"[1 2]\"") {
		t.Errorf("missing values attribute in %q", out)
	}
}

func TestContainerView(t *testing.T) {
	l := Of("a", "b")
	c := l.Container()
	if c.Empty() || c.Size() != 2 {
		t.Errorf("Empty() = %t, Size() = %d", c.Empty(), c.Size())
	}
	vals := c.Values()
	if !slices.Equal(vals, []interface{}{"a", "b"}) {
		t.Errorf("Values() = %v", vals)
	}
	if l.Len() != 2 {
		t.Error("Values consumed the list")
	}
	if got := c.String(); got != "LinkedList\n[a b]" {
		t.Errorf("String() = %q", got)
	}
	c.Clear()
	if !l.IsEmpty() || !c.Empty() {
		t.Error("Clear through the view did not empty the list")
	}
}
