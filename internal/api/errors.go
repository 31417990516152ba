package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnconfigured indicates no API base URL is set. Callers must not
// issue network requests in that state.
var ErrUnconfigured = errors.New("api: base URL is not configured")

// UnconfiguredMessage is the user-facing text shown when no base URL is set.
const UnconfiguredMessage = "API base URL is not configured."

// genericMessage covers errors that carry no message of their own.
const genericMessage = "Request failed."

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d", e.Code)
}

// DecodeError reports a response body that could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "api: decoding response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Message maps a fetch error to the inline text shown next to the retry
// affordance. Cancellation is not part of the error taxonomy; callers
// drop aborted results before reaching here.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var se *StatusError
	var de *DecodeError
	switch {
	case errors.Is(err, ErrUnconfigured):
		return UnconfiguredMessage
	case errors.As(err, &se):
		return fmt.Sprintf("Request failed with status %d.", se.Code)
	case errors.As(err, &de):
		return "Could not decode API response."
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return genericMessage
}

// Canceled reports whether err stems from context cancellation, i.e. an
// abort rather than a failure. Request timeouts are failures and do not
// count.
func Canceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
