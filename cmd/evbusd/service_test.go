package main

import (
	"errors"
	"testing"

	"evbus/pkg/bus"
)

func TestBusService_CountsPostsAndFailures(t *testing.T) {
	b := bus.NewBus()
	rec := bus.NewRecorder()
	_ = b.Subscribe(tickEvent, rec)
	_ = b.Subscribe("bad", bus.SubscriberFunc(func(e *bus.Event) error {
		return errors.New("boom")
	}))
	svc := newBusService(b, rec)

	for i := 0; i < 3; i++ {
		if err := svc.post(bus.NewEvent(tickEvent, i)); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	if err := svc.post(bus.NewEvent("bad", 0)); err == nil {
		t.Fatalf("expected failing post to return an error")
	}

	st := svc.Status()
	if st.PostedTotal != 4 || st.FailuresTotal != 1 {
		t.Fatalf("counters: posted=%d failures=%d", st.PostedTotal, st.FailuresTotal)
	}
	if st.Subscribers[tickEvent] != 1 || st.Subscribers["bad"] != 1 {
		t.Fatalf("unexpected subscriber counts: %v", st.Subscribers)
	}
	if len(st.Recent) != 3 {
		t.Fatalf("expected 3 recorded deliveries, got %d", len(st.Recent))
	}
	if st.Recent[0].Event != tickEvent || st.Recent[0].Payload != "0" {
		t.Fatalf("unexpected first delivery: %+v", st.Recent[0])
	}
}

func TestBusService_RecentIsCapped(t *testing.T) {
	b := bus.NewBus()
	rec := bus.NewRecorder()
	_ = b.Subscribe(tickEvent, rec)
	svc := newBusService(b, rec)
	for i := 0; i < recentDeliveries+5; i++ {
		if err := svc.post(bus.NewEvent(tickEvent, i)); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	st := svc.Status()
	if len(st.Recent) != recentDeliveries {
		t.Fatalf("expected %d recent deliveries, got %d", recentDeliveries, len(st.Recent))
	}
	if st.Recent[len(st.Recent)-1].Payload != "20" {
		t.Fatalf("expected newest delivery last, got %+v", st.Recent[len(st.Recent)-1])
	}
}

func TestBusService_Ready(t *testing.T) {
	svc := newBusService(bus.NewBus(), bus.NewRecorder())
	if svc.Ready() {
		t.Fatalf("service should not be ready before markReady")
	}
	svc.markReady()
	if !svc.Ready() {
		t.Fatalf("service should be ready after markReady")
	}
}
