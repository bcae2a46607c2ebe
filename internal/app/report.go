package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/maxbolgarin/dvhook/internal/event"
	"github.com/maxbolgarin/dvhook/internal/webhook"
	"github.com/maxbolgarin/errm"
)

// Process exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
)

const skipSuffix = "; skipping webhook dispatch."

// Fail prints a message for err and returns the failure exit code
func Fail(w io.Writer, err error) int {
	fmt.Fprintln(w, Describe(err))
	return ExitFailed
}

// Describe turns a dispatch error into a single line for CI logs
func Describe(err error) string {
	var (
		statusErr  *webhook.StatusError
		requestErr *webhook.RequestError
	)

	switch {
	case errm.Is(err, webhook.ErrMissingURL):
		return webhook.ErrMissingURL.Error() + skipSuffix
	case errm.Is(err, webhook.ErrMissingSecret):
		return webhook.ErrMissingSecret.Error() + skipSuffix
	case errm.Is(err, event.ErrEmptyPayload):
		return "No payload data available" + skipSuffix
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Webhook HTTP error: %d - %s", statusErr.Code, statusErr.Reason)
	case errors.As(err, &requestErr):
		return "Webhook request failed: " + requestErr.Error()
	default:
		return err.Error() + skipSuffix
	}
}
