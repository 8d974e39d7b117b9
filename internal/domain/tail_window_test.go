package domain

import (
	"fmt"
	"reflect"
	"testing"
)

func TestIsRecord(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", false},
		{" ", false},
		{"\t \r", false},
		{"2024-01-01T00:00:00", true},
		{"  padded  ", true},
		{"value\r", true},
		{"\x1c\x1d\x1e\x1f", false},
		{"\u00a0\u2028", false},
		{"\x1fvalue", true},
	}

	for _, tt := range tests {
		if got := IsRecord(tt.line); got != tt.want {
			t.Errorf("IsRecord(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestTailWindowKeepsLastRecordsInOrder(t *testing.T) {
	w := NewTailWindow(2)
	for _, line := range []string{"a", "b", "c", "d"} {
		w.Push(line)
	}

	got := w.Items()
	want := []string{"c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %#v, want %#v", got, want)
	}
	if w.Len() != 2 {
		t.Fatalf("len = %d, want 2", w.Len())
	}
}

func TestTailWindowPartiallyFilled(t *testing.T) {
	w := NewTailWindow(10)
	w.Push("a")
	w.Push("")
	w.Push("   ")
	w.Push("b")

	got := w.Items()
	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %#v, want %#v", got, want)
	}
}

func TestTailWindowEmpty(t *testing.T) {
	w := NewTailWindow(5)

	got := w.Items()
	if got == nil {
		t.Fatal("items must not be nil")
	}
	if len(got) != 0 {
		t.Fatalf("items = %#v, want empty", got)
	}
}

func TestTailWindowZeroLimit(t *testing.T) {
	w := NewTailWindow(0)
	w.Push("a")

	if w.Len() != 0 {
		t.Fatalf("len = %d, want 0", w.Len())
	}
}

func TestTailWindowNeverExceedsLimit(t *testing.T) {
	for _, limit := range []int{1, 3, 7, 1000} {
		w := NewTailWindow(limit)
		for i := 0; i < 2500; i++ {
			w.Push(fmt.Sprintf("line-%d", i))
		}

		items := w.Items()
		if len(items) > limit {
			t.Fatalf("limit=%d: got %d items", limit, len(items))
		}
		if last := items[len(items)-1]; last != "line-2499" {
			t.Fatalf("limit=%d: last item = %q, want line-2499", limit, last)
		}
	}
}
