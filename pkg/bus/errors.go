package bus

import (
	"errors"
	"fmt"
)

// handlerError wraps a subscriber failure surfaced by Post.
type handlerError struct {
	event string
	index int
	err   error
}

func (e handlerError) Error() string {
	return fmt.Sprintf("post %q: subscriber %d: %v", e.event, e.index, e.err)
}

func (e handlerError) Unwrap() error { return e.err }

// IsHandlerFailure reports whether err was returned by a subscriber during
// Post (as opposed to an error produced by the caller's own plumbing).
func IsHandlerFailure(err error) bool {
	var he handlerError
	return errors.As(err, &he)
}
