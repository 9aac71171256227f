package state

import (
	"reflect"
	"testing"
)

func TestExecutionQueueIsFIFO(t *testing.T) {
	var q ExecutionQueue
	q.Push("a")
	q.Push("b")
	q.Push("c")
	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("expected %q, got %q (%v)", want, got, ok)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestExecutionQueueReplaceSnapshots(t *testing.T) {
	var q ExecutionQueue
	q.Push("stale")
	src := []string{"a", "b"}
	q.Replace(src)
	src[0] = "mutated"
	if got := q.Items(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", got)
	}
	q.Pop()
	if q.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", q.Len())
	}
	q.Clear()
	if q.Len() != 0 || q.Items() != nil {
		t.Fatalf("expected cleared queue")
	}
}
