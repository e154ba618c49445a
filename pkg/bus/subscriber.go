package bus

// Subscriber receives events from a Bus. Handle is called with a shared
// event; implementations may mutate their own state but must not mutate the
// event or retain it beyond the call. A non-nil error aborts the delivery
// batch (see Bus.Post).
type Subscriber interface {
	Handle(e *Event) error
}

// SubscriberFunc adapts a plain function to the Subscriber interface.
//
// Note that every SubscriberFunc shares one runtime type, so Unsubscribe
// cannot tell two of them apart; stateful or individually removable
// subscribers should be distinct named types instead.
type SubscriberFunc func(e *Event) error

// Handle calls f(e).
func (f SubscriberFunc) Handle(e *Event) error { return f(e) }
