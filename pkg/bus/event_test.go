package bus

import (
	"strings"
	"testing"
)

func TestEventRoundTrip(t *testing.T) {
	type point struct{ X, Y int }

	e := NewEvent("tick", 32)
	if e.Name() != "tick" {
		t.Fatalf("name: got %q, want %q", e.Name(), "tick")
	}
	if got := Data[int](e); got != 32 {
		t.Fatalf("payload: got %d, want 32", got)
	}

	se := NewEvent("msg", "hello")
	if got := Data[string](se); got != "hello" {
		t.Fatalf("payload: got %q, want %q", got, "hello")
	}

	pe := NewEvent("move", point{X: 1, Y: 2})
	if got := Data[point](pe); got != (point{X: 1, Y: 2}) {
		t.Fatalf("payload: got %+v", got)
	}
}

func TestEventData_WrongTypePanics(t *testing.T) {
	e := NewEvent("x", "hello")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on mismatched payload type")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "string") || !strings.Contains(msg, "int") {
			t.Fatalf("panic message should name both types; got %v", r)
		}
	}()
	_ = Data[int](e)
}

func TestEventData_ExactMatchOnly(t *testing.T) {
	// A payload stored as a concrete type must be requested as exactly that
	// type; an interface it happens to satisfy does not match.
	e := NewEvent("err", strings.NewReader("x"))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when requesting payload as an interface type")
		}
	}()
	type reader interface{ Read([]byte) (int, error) }
	_ = Data[reader](e)
}

func TestEventEmptyName(t *testing.T) {
	e := NewEvent("", 1)
	if e.Name() != "" {
		t.Fatalf("empty name should be preserved, got %q", e.Name())
	}
	if got := Data[int](e); got != 1 {
		t.Fatalf("payload: got %d, want 1", got)
	}
}

func TestEventPayloadType(t *testing.T) {
	e := NewEvent("tick", 7)
	if e.PayloadType() == nil || e.PayloadType().Kind().String() != "int" {
		t.Fatalf("payload type: got %v", e.PayloadType())
	}
	if n := NewEvent("nil", nil); n.PayloadType() != nil {
		t.Fatalf("nil payload should have nil type, got %v", n.PayloadType())
	}
}
