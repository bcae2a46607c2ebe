package webhook

import (
	"strings"
	"time"

	"github.com/maxbolgarin/lang"
)

const (
	defaultSecretHeader = "x-github-workflow-secret"
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "dvhook/0.1.0"
)

// Config represents outgoing webhook configuration
type Config struct {
	URL          string        `yaml:"url" env:"DV_WEBHOOK_URL"`
	Secret       string        `yaml:"secret" env:"DV_WEBHOOK_SECRET"`
	SecretHeader string        `yaml:"secret_header" env:"DV_WEBHOOK_SECRET_HEADER"`
	Timeout      time.Duration `yaml:"timeout" env:"DV_WEBHOOK_TIMEOUT"`
	UserAgent    string        `yaml:"user_agent" env:"DV_WEBHOOK_USER_AGENT"`
	ProxyURL     string        `yaml:"proxy_url" env:"DV_WEBHOOK_PROXY_URL"`
}

func (c *Config) PrepareAndValidate() error {
	c.URL = strings.TrimSpace(c.URL)
	c.Secret = strings.TrimSpace(c.Secret)

	// URL is checked first, the error message names the first missing variable
	if c.URL == "" {
		return ErrMissingURL
	}
	if c.Secret == "" {
		return ErrMissingSecret
	}

	c.SecretHeader = lang.Check(strings.TrimSpace(c.SecretHeader), defaultSecretHeader)
	c.Timeout = lang.Check(c.Timeout, defaultTimeout)
	c.UserAgent = lang.Check(strings.TrimSpace(c.UserAgent), defaultUserAgent)
	c.ProxyURL = strings.TrimSpace(c.ProxyURL)

	return nil
}
