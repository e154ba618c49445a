package bus

import (
	"fmt"
	"reflect"
)

// Event binds a name to a payload of arbitrary type. The name routes the
// event to subscribers; the payload type is erased at construction and
// recovered by the subscriber with Data, which requires an exact type match.
// Events are immutable once constructed.
type Event struct {
	name string
	data any
	typ  reflect.Type
}

// NewEvent constructs an event carrying data under the given name. The name
// is not validated; an empty name is a valid (if rarely useful) key.
func NewEvent(name string, data any) *Event {
	return &Event{name: name, data: data, typ: reflect.TypeOf(data)}
}

// Name returns the event's name. Comparison is exact and case-sensitive.
func (e *Event) Name() string { return e.name }

// PayloadType returns the concrete type the payload was constructed with,
// or nil for a nil payload.
func (e *Event) PayloadType() reflect.Type { return e.typ }

// Data returns the payload of e as T. T must be exactly the type the event
// was constructed with; asking for any other type is a programmer error and
// panics. Subscribers that handle several payload types under one name can
// switch on PayloadType before calling.
func Data[T any](e *Event) T {
	want := reflect.TypeOf((*T)(nil)).Elem()
	if want != e.typ {
		panic(fmt.Sprintf("bus: event %q carries %v, payload requested as %v", e.name, e.typ, want))
	}
	return e.data.(T)
}
