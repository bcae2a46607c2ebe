package webhook

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/maxbolgarin/abstract"
	"github.com/maxbolgarin/cliex"
	"github.com/maxbolgarin/dvhook/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

// Client delivers notification payloads to the webhook endpoint
type Client struct {
	cli *cliex.HTTP
	cfg Config
	log logze.Logger
}

// New creates a new webhook client
func New(cfg Config) (*Client, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}

	log := logze.With("component", "webhook")

	cli, err := cliex.New(cliex.WithLogger(log))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create HTTP client")
	}

	cli.C().SetTimeout(cfg.Timeout)
	cli.C().SetRetryCount(0)
	cli.C().SetHeader("User-Agent", cfg.UserAgent)
	cli.C().SetHeader(cfg.SecretHeader, cfg.Secret)
	if cfg.ProxyURL != "" {
		cli.C().SetProxy(cfg.ProxyURL)
	}

	return &Client{
		cli: cli,
		cfg: cfg,
		log: log,
	}, nil
}

// Send posts the payload as compact JSON.
// It returns *StatusError if the endpoint answered with a non 2xx status.
func (c *Client) Send(ctx context.Context, payload model.Payload) error {
	body, err := payload.Marshal()
	if err != nil {
		return err
	}

	timer := abstract.StartTimer()
	resp, err := c.cli.C().R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.cfg.URL)

	// Status is checked before the error, a response with a status is not a transport failure
	if resp != nil && resp.RawResponse != nil && !resp.IsSuccess() {
		code := resp.StatusCode()
		c.log.Debug("webhook responded with error", "status", code, "elapsed", timer.ElapsedTime().String())
		return &StatusError{
			Code:   code,
			Reason: statusReason(code, resp.Status()),
		}
	}
	if err != nil {
		return &RequestError{Err: err}
	}

	c.log.Debug("webhook delivered", "status", resp.StatusCode(), "size", len(body), "elapsed", timer.ElapsedTime().String())

	return nil
}

// statusReason extracts the reason phrase from a status line like "404 Not Found"
func statusReason(code int, status string) string {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
	return lang.Check(reason, http.StatusText(code))
}
