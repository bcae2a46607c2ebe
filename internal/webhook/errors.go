package webhook

import (
	"errors"
	"fmt"
)

var (
	ErrMissingURL    = errors.New("DV_WEBHOOK_URL is required but not set")
	ErrMissingSecret = errors.New("DV_WEBHOOK_SECRET is required but not set")
)

// StatusError is returned when the webhook responds with a non 2xx status
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook responded with %d - %s", e.Code, e.Reason)
}

// RequestError is returned when the request could not be delivered at all
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
