package bus

import "sync"

// Delivery is one recorded event: its name plus the payload value as
// constructed. The event itself is not retained.
type Delivery struct {
	Event   string
	Payload any
}

// Recorder is a Subscriber that stores every delivery it receives. It is
// used by tests and by status reporting; unlike the Bus itself it is
// mutex-guarded so snapshots may be taken from other goroutines.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Handle(e *Event) error {
	r.mu.Lock()
	r.deliveries = append(r.deliveries, Delivery{Event: e.name, Payload: e.data})
	r.mu.Unlock()
	return nil
}

// Deliveries returns a copy of everything recorded so far.
func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}
