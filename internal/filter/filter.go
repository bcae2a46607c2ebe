package filter

import (
	"strings"

	"github.com/maxbolgarin/dvhook/internal/model"
)

// Reason describes why a dispatch was suppressed
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonSelfComment Reason = "self_comment"
	ReasonBotCommand  Reason = "bot_command"
)

// Message returns a human readable explanation for CI logs
func (r Reason) Message() string {
	switch r {
	case ReasonSelfComment:
		return "Comment author is the same as the issue author"
	case ReasonBotCommand:
		return "Comment contains an ignored substring"
	default:
		return ""
	}
}

// Filter decides whether a payload should be sent at all
type Filter struct {
	commands []string
}

// New creates a new suppression filter
func New(cfg Config) *Filter {
	cfg.Prepare()
	return &Filter{commands: cfg.IgnoredCommands}
}

// Check returns ReasonNone if the payload should be sent.
// The self comment rule is checked before the bot command rule.
func (f *Filter) Check(payload model.Payload) Reason {
	// People do not need a notification about their own comment on their own report
	if payload.IsSelfComment() {
		return ReasonSelfComment
	}
	if f.isBotCommand(payload.CommentBody) {
		return ReasonBotCommand
	}
	return ReasonNone
}

func (f *Filter) isBotCommand(body string) bool {
	for _, cmd := range f.commands {
		if strings.Contains(body, cmd) {
			return true
		}
	}
	return false
}
