package bus

import "reflect"

// Bus maps event names to ordered subscriber lists. Subscribers registered
// earlier are invoked earlier; the same subscriber may be registered more
// than once under a name and is invoked that many times per post.
//
// A Bus is not safe for concurrent use. It is designed for single-writer
// embedding; callers that share one across goroutines must provide their
// own synchronization.
type Bus struct {
	subscribers map[string][]Subscriber
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Subscriber)}
}

// From returns a Bus seeded with the given name-to-subscribers mapping. The
// Bus takes ownership of the map; the caller must not use it afterwards.
func From(subscribers map[string][]Subscriber) *Bus {
	if subscribers == nil {
		subscribers = make(map[string][]Subscriber)
	}
	return &Bus{subscribers: subscribers}
}

// Subscribe appends s to the subscriber list for name, creating the list if
// this is the first registration. The error is always nil today; the return
// is reserved so registration can grow failure modes without breaking
// callers.
func (b *Bus) Subscribe(name string, s Subscriber) error {
	b.subscribers[name] = append(b.subscribers[name], s)
	return nil
}

// Unsubscribe removes at most one subscriber from the list for name: the
// first whose runtime type matches that of s. Subscribers of the same type
// are indistinguishable here, so the earliest registration wins. If no
// subscriber of that type is registered under name, or the name has no list
// at all, the call is a no-op.
func (b *Bus) Unsubscribe(name string, s Subscriber) error {
	subs := b.subscribers[name]
	tag := reflect.TypeOf(s)
	for i := range subs {
		if reflect.TypeOf(subs[i]) == tag {
			b.subscribers[name] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	return nil
}

// SubscribeAll registers every subscriber in subs under name, in order.
// Equivalent to calling Subscribe for each element; the first failure
// aborts the remainder.
func (b *Bus) SubscribeAll(name string, subs []Subscriber) error {
	for _, s := range subs {
		if err := b.Subscribe(name, s); err != nil {
			return err
		}
	}
	return nil
}

// UnsubscribeAll removes every subscriber in subs from name, in order, with
// Unsubscribe's type-tag semantics per element.
func (b *Bus) UnsubscribeAll(name string, subs []Subscriber) error {
	for _, s := range subs {
		if err := b.Unsubscribe(name, s); err != nil {
			return err
		}
	}
	return nil
}

// Post delivers e to every subscriber registered under e.Name(), in
// registration order, on the caller's goroutine. Delivery is fail-fast: the
// first subscriber error aborts the batch, and Post returns that error
// wrapped with the event name and subscriber position (see
// IsHandlerFailure). Posting a name with no subscribers is a no-op.
func (b *Bus) Post(e *Event) error {
	for i, s := range b.subscribers[e.name] {
		if err := s.Handle(e); err != nil {
			return handlerError{event: e.name, index: i, err: err}
		}
	}
	return nil
}

// Counts reports the number of registered subscribers per event name.
// Names whose lists have been emptied by Unsubscribe are omitted.
func (b *Bus) Counts() map[string]int {
	out := make(map[string]int, len(b.subscribers))
	for name, subs := range b.subscribers {
		if len(subs) > 0 {
			out[name] = len(subs)
		}
	}
	return out
}
