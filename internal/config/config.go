package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/maxbolgarin/dvhook/internal/event"
	"github.com/maxbolgarin/dvhook/internal/filter"
	"github.com/maxbolgarin/dvhook/internal/model"
	"github.com/maxbolgarin/dvhook/internal/webhook"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/lang"
	"github.com/maxbolgarin/logze/v2"
)

// Config represents the main application configuration
type Config struct {
	Webhook webhook.Config    `yaml:"webhook"`
	Event   event.Config      `yaml:"event"`
	Filter  filter.Config     `yaml:"filter"`
	Fields  model.EventFields
}

// Load reads local overrides from envFile and then the process environment.
// Empty envFile means .env next to the executable.
// Variables that are already set in the environment are not overridden by the file.
func Load(envFile string) (Config, error) {
	loadEnvFile(lang.Check(envFile, defaultEnvFile()))

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, errm.Wrap(err, "read env")
	}

	if err := cfg.PrepareAndValidate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// PrepareAndValidate checks required values and sets defaults
func (c *Config) PrepareAndValidate() error {
	if err := c.Webhook.PrepareAndValidate(); err != nil {
		return errm.Wrap(err, "webhook")
	}
	if err := c.Event.PrepareAndValidate(); err != nil {
		return errm.Wrap(err, "event")
	}
	c.Filter.Prepare()
	c.Fields = c.Fields.Trim()
	return nil
}

// loadEnvFile applies a local overrides file, a missing or malformed file is not an error
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logze.Warn("cannot load env file, it is ignored", "path", path, "error", err)
	}
}

func defaultEnvFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), ".env")
}
