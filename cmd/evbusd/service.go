package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"evbus/internal/httpapi"
	"evbus/pkg/bus"
	"evbus/pkg/types"
)

// recentDeliveries caps how many deliveries /status echoes back.
const recentDeliveries = 16

// busService adapts the bus to the httpapi.Service interface and keeps the
// daemon's post counters. The bus itself is single-writer: every
// registration completes in run before the tick goroutine or the HTTP
// server starts, so Status only ever reads a frozen registry.
type busService struct {
	bus      *bus.Bus
	rec      *bus.Recorder
	start    time.Time
	ready    atomic.Bool
	posted   atomic.Uint64
	failures atomic.Uint64
}

func newBusService(b *bus.Bus, rec *bus.Recorder) *busService {
	return &busService{bus: b, rec: rec, start: time.Now()}
}

// post delivers e and records the outcome in counters and metrics.
func (s *busService) post(e *bus.Event) error {
	err := s.bus.Post(e)
	s.posted.Add(1)
	if err != nil {
		s.failures.Add(1)
	}
	httpapi.ObservePost(e.Name(), err)
	return err
}

func (s *busService) markReady() { s.ready.Store(true) }

func (s *busService) Ready() bool { return s.ready.Load() }

func (s *busService) Status() types.BusStatus {
	all := s.rec.Deliveries()
	if len(all) > recentDeliveries {
		all = all[len(all)-recentDeliveries:]
	}
	recent := make([]types.DeliveryView, 0, len(all))
	for _, d := range all {
		recent = append(recent, types.DeliveryView{Event: d.Event, Payload: fmt.Sprint(d.Payload)})
	}
	now := time.Now()
	return types.BusStatus{
		Subscribers:    s.bus.Counts(),
		PostedTotal:    s.posted.Load(),
		FailuresTotal:  s.failures.Load(),
		Recent:         recent,
		UptimeSeconds:  int64(now.Sub(s.start).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}
