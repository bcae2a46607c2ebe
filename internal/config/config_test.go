package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxbolgarin/dvhook/internal/webhook"
)

var envNames = []string{
	"DV_WEBHOOK_URL",
	"DV_WEBHOOK_SECRET",
	"DV_WEBHOOK_SECRET_HEADER",
	"DV_WEBHOOK_TIMEOUT",
	"DV_WEBHOOK_USER_AGENT",
	"DV_WEBHOOK_PROXY_URL",
	"DV_USE_EVENT_FILE",
	"DV_REPORT_TITLE_FIELD",
	"DV_IGNORED_COMMANDS",
	"GITHUB_EVENT_PATH",
	"ISSUE_NUMBER",
	"ISSUE_AUTHOR_ID",
	"ISSUE_TITLE",
	"COMMENT_ID",
	"COMMENT_BODY",
	"COMMENT_USER_ID",
	"COMMENT_URL",
	"COMMENT_CREATED_AT",
}

// clearEnv unsets every variable used by the config, values are restored after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range envNames {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_URL", " https://example.com/hook ")
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")
	t.Setenv("DV_WEBHOOK_TIMEOUT", "5s")
	t.Setenv("COMMENT_BODY", "  hello  ")
	t.Setenv("COMMENT_ID", "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Webhook.URL != "https://example.com/hook" {
		t.Fatalf("expected trimmed url, got %q", cfg.Webhook.URL)
	}
	if cfg.Webhook.Timeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %s", cfg.Webhook.Timeout)
	}
	if cfg.Webhook.SecretHeader != "x-github-workflow-secret" {
		t.Fatalf("expected default secret header, got %q", cfg.Webhook.SecretHeader)
	}
	if cfg.Event.TitleField != "title" {
		t.Fatalf("expected default title field, got %q", cfg.Event.TitleField)
	}
	if len(cfg.Filter.IgnoredCommands) != 3 {
		t.Fatalf("expected default ignored commands, got %v", cfg.Filter.IgnoredCommands)
	}
	if cfg.Fields.CommentBody != "hello" || cfg.Fields.CommentID != "5" {
		t.Fatalf("unexpected event fields %+v", cfg.Fields)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")
	t.Setenv("COMMENT_BODY", "hello")

	_, err := Load("")
	if !errors.Is(err, webhook.ErrMissingURL) {
		t.Fatalf("expected ErrMissingURL, got %v", err)
	}

	t.Setenv("DV_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("DV_WEBHOOK_SECRET", "   ")

	_, err = Load("")
	if !errors.Is(err, webhook.ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoadIgnoredCommands(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")
	t.Setenv("DV_IGNORED_COMMANDS", "/bot a, /bot b")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Filter.IgnoredCommands) != 2 || cfg.Filter.IgnoredCommands[1] != "/bot b" {
		t.Fatalf("unexpected ignored commands %q", cfg.Filter.IgnoredCommands)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMMENT_BODY", "from process")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DV_WEBHOOK_URL=https://example.com/hook\n" +
		"DV_WEBHOOK_SECRET=from-file\n" +
		"COMMENT_BODY=from file\n" +
		"ISSUE_NUMBER=12\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Webhook.Secret != "from-file" {
		t.Fatalf("expected secret from file, got %q", cfg.Webhook.Secret)
	}
	if cfg.Fields.CommentBody != "from process" {
		t.Fatalf("expected process env to win over file, got %q", cfg.Fields.CommentBody)
	}
	if cfg.Fields.IssueNumber != "12" {
		t.Fatalf("expected issue number from file, got %q", cfg.Fields.IssueNumber)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestLoadMalformedEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("COMMENT_BODY=\"unterminated\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected malformed env file to be ignored, got %v", err)
	}
	if cfg.Fields.CommentBody != "" {
		t.Fatalf("expected nothing applied from malformed file, got %q", cfg.Fields.CommentBody)
	}
}

func TestLoadEventFileIsOptIn(t *testing.T) {
	clearEnv(t)
	t.Setenv("DV_WEBHOOK_URL", "https://example.com/hook")
	t.Setenv("DV_WEBHOOK_SECRET", "s3cret")
	t.Setenv("GITHUB_EVENT_PATH", "/github/workflow/event.json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Event.UseEventFile {
		t.Fatalf("expected event file to be disabled by default")
	}

	t.Setenv("DV_USE_EVENT_FILE", "true")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Event.UseEventFile || cfg.Event.EventPath != "/github/workflow/event.json" {
		t.Fatalf("expected enabled event file, got %+v", cfg.Event)
	}
}
