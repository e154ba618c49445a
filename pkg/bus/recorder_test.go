package bus

import "testing"

func TestRecorder_RecordsDeliveries(t *testing.T) {
	b := NewBus()
	rec := NewRecorder()
	_ = b.Subscribe("tick", rec)
	for i := 0; i < 3; i++ {
		if err := b.Post(NewEvent("tick", i)); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	got := rec.Deliveries()
	if len(got) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(got))
	}
	for i, d := range got {
		if d.Event != "tick" || d.Payload != i {
			t.Fatalf("delivery %d: got %+v", i, d)
		}
	}
}

func TestRecorder_SnapshotIsIndependent(t *testing.T) {
	rec := NewRecorder()
	_ = rec.Handle(NewEvent("a", 1))
	snap := rec.Deliveries()
	_ = rec.Handle(NewEvent("b", 2))
	if len(snap) != 1 {
		t.Fatalf("snapshot must not grow with later deliveries, got %d", len(snap))
	}
	if len(rec.Deliveries()) != 2 {
		t.Fatalf("recorder should hold 2 deliveries, got %d", len(rec.Deliveries()))
	}
}
