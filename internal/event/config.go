package event

import (
	"strings"

	"github.com/maxbolgarin/errm"
)

// Config represents event collection configuration
type Config struct {
	// TitleField is a logfmt key extracted from the issue title, empty value disables extraction
	TitleField   string `yaml:"title_field" env:"DV_REPORT_TITLE_FIELD" env-default:"title"`
	// UseEventFile enables filling absent fields from the GitHub Actions event file
	UseEventFile bool   `yaml:"use_event_file" env:"DV_USE_EVENT_FILE"`
	// EventPath is a path to the GitHub Actions event file, it is read only with UseEventFile
	EventPath    string `yaml:"event_path" env:"GITHUB_EVENT_PATH"`
}

func (c *Config) PrepareAndValidate() error {
	c.TitleField = strings.TrimSpace(c.TitleField)
	c.EventPath = strings.TrimSpace(c.EventPath)

	if strings.ContainsAny(c.TitleField, "=\" \t\n") {
		return errm.Errorf("invalid title field %q: must be a bare logfmt key", c.TitleField)
	}
	if c.UseEventFile && c.EventPath == "" {
		return errm.New("GITHUB_EVENT_PATH is required when event file is enabled")
	}

	return nil
}
