package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/maxbolgarin/dvhook/internal/config"
	"github.com/maxbolgarin/dvhook/internal/event"
	"github.com/maxbolgarin/dvhook/internal/filter"
	"github.com/maxbolgarin/dvhook/internal/model"
	"github.com/maxbolgarin/dvhook/internal/webhook"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// Result describes what happened during a dispatch
type Result struct {
	Payload    model.Payload
	Suppressed filter.Reason
	Sent       bool
}

// Dispatcher builds a notification from the CI event and sends it to the webhook
type Dispatcher struct {
	builder *event.Builder
	filter  *filter.Filter
	client  *webhook.Client
	fields  model.EventFields

	dryRun bool
	stdout io.Writer
	stderr io.Writer
	log    logze.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithOutput sets streams for payload and outcome messages
func WithOutput(stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		d.stdout = stdout
		d.stderr = stderr
	}
}

// WithDryRun disables sending, the payload is still built, filtered and printed
func WithDryRun(dryRun bool) Option {
	return func(d *Dispatcher) {
		d.dryRun = dryRun
	}
}

// New creates a new dispatcher
func New(cfg config.Config, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		fields: cfg.Fields,
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logze.With("component", "app"),
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.init(cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize dispatcher")
	}

	return d, nil
}

func (d *Dispatcher) init(cfg config.Config) (err error) {
	d.builder, err = event.NewBuilder(cfg.Event)
	if err != nil {
		return errm.Wrap(err, "failed to create payload builder")
	}

	d.filter = filter.New(cfg.Filter)

	d.client, err = webhook.New(cfg.Webhook)
	if err != nil {
		return errm.Wrap(err, "failed to create webhook client")
	}

	return nil
}

// Dispatch builds the payload, applies suppression rules and sends it.
// Suppression is not an error, it is reported in Result.Suppressed.
func (d *Dispatcher) Dispatch(ctx context.Context) (Result, error) {
	fields := d.builder.Collect(d.fields)

	payload, err := d.builder.Build(fields)
	if err != nil {
		return Result{}, err
	}
	res := Result{Payload: payload}

	if reason := d.filter.Check(payload); reason != filter.ReasonNone {
		d.log.Debug("dispatch suppressed", "reason", reason)
		res.Suppressed = reason
		return res, nil
	}

	pretty, err := payload.Pretty()
	if err != nil {
		return res, err
	}
	fmt.Fprintln(d.stdout, pretty)

	if d.dryRun {
		d.log.Info("dry run, webhook is not called")
		return res, nil
	}

	if err := d.client.Send(ctx, payload); err != nil {
		return res, err
	}
	res.Sent = true

	return res, nil
}

// Run performs a dispatch, prints the outcome and returns a process exit code
func (d *Dispatcher) Run(ctx context.Context) int {
	res, err := d.Dispatch(ctx)
	if err != nil {
		return Fail(d.stderr, err)
	}

	switch {
	case res.Suppressed != filter.ReasonNone:
		fmt.Fprintln(d.stderr, res.Suppressed.Message()+skipSuffix)
	case res.Sent:
		fmt.Fprintln(d.stdout, "Webhook dispatched successfully.")
	}

	return ExitOK
}
