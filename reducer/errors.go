package reducer

import (
	"errors"
	"fmt"
)

// StatusCode classifies why an action was turned away at the dispatch
// boundary.
type StatusCode int

const (
	// StatusInvalidArgument: the action's payload is malformed.
	StatusInvalidArgument StatusCode = iota
	// StatusFailedPrecondition: the payload is well formed but cannot be
	// honoured, e.g. an empty price range.
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// ActionError rejects an action before it reaches a reducer. Reducers
// themselves never fail.
type ActionError struct {
	Code    StatusCode
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

// CodeOf returns the StatusCode of the first ActionError in err's chain.
// ok is false when err carries none, e.g. a cancelled context.
func CodeOf(err error) (code StatusCode, ok bool) {
	var ae *ActionError
	if !errors.As(err, &ae) {
		return 0, false
	}
	return ae.Code, true
}

// NewInvalidArgument rejects a malformed payload.
func NewInvalidArgument(message string) *ActionError {
	return &ActionError{Code: StatusInvalidArgument, Message: message}
}

// NewFailedPrecondition rejects a payload that cannot be honoured.
func NewFailedPrecondition(message string) *ActionError {
	return &ActionError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf is NewFailedPrecondition with a formatted message.
func NewFailedPreconditionf(format string, args ...any) *ActionError {
	return NewFailedPrecondition(fmt.Sprintf(format, args...))
}
