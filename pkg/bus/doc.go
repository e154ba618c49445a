// Package bus provides a single-writer, in-process event dispatcher. It is
// structured into small files by concern:
//
//   - event.go: the Event carrier (name + type-erased payload) and the
//     checked payload accessor.
//   - subscriber.go: the Subscriber contract and the SubscriberFunc adapter.
//   - bus.go: the Bus registry (subscribe/unsubscribe/post).
//   - errors.go: error types and helpers (IsHandlerFailure).
//   - recorder.go: a Subscriber that records deliveries, for tests and
//     status snapshots.
//
// Dispatch is synchronous: Post invokes every subscriber registered under
// the event's name, in registration order, on the caller's goroutine, and
// returns only after the last subscriber has returned. The Bus performs no
// locking; embedders that share one across goroutines must synchronize
// externally.
package bus
