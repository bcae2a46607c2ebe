package filter

import "strings"

var defaultIgnoredCommands = []string{
	"/reportbot help",
	"/reportbot resolve",
	"/reportbot delete",
}

// Config represents suppression rules configuration
type Config struct {
	IgnoredCommands []string `yaml:"ignored_commands" env:"DV_IGNORED_COMMANDS" env-separator:","`
}

// Prepare drops blank commands and falls back to the default list
func (c *Config) Prepare() {
	commands := make([]string, 0, len(c.IgnoredCommands))
	for _, cmd := range c.IgnoredCommands {
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			commands = append(commands, cmd)
		}
	}
	if len(commands) == 0 {
		commands = append(commands, defaultIgnoredCommands...)
	}
	c.IgnoredCommands = commands
}
