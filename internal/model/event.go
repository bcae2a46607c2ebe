package model

import (
	"strings"

	"github.com/maxbolgarin/lang"
)

// EventFields holds raw values of the triggering issue comment event.
// Every value is trimmed, an empty string means the value is absent.
type EventFields struct {
	IssueNumber      string `env:"ISSUE_NUMBER"`
	IssueAuthorID    string `env:"ISSUE_AUTHOR_ID"`
	IssueTitle       string `env:"ISSUE_TITLE"`
	CommentID        string `env:"COMMENT_ID"`
	CommentBody      string `env:"COMMENT_BODY"`
	CommentUserID    string `env:"COMMENT_USER_ID"`
	CommentURL       string `env:"COMMENT_URL"`
	CommentCreatedAt string `env:"COMMENT_CREATED_AT"`
}

// Merge fills absent fields with values from other, present fields are kept
func (f EventFields) Merge(other EventFields) EventFields {
	return EventFields{
		IssueNumber:      lang.Check(f.IssueNumber, other.IssueNumber),
		IssueAuthorID:    lang.Check(f.IssueAuthorID, other.IssueAuthorID),
		IssueTitle:       lang.Check(f.IssueTitle, other.IssueTitle),
		CommentID:        lang.Check(f.CommentID, other.CommentID),
		CommentBody:      lang.Check(f.CommentBody, other.CommentBody),
		CommentUserID:    lang.Check(f.CommentUserID, other.CommentUserID),
		CommentURL:       lang.Check(f.CommentURL, other.CommentURL),
		CommentCreatedAt: lang.Check(f.CommentCreatedAt, other.CommentCreatedAt),
	}
}

// Trim removes surrounding whitespace from every value
func (f EventFields) Trim() EventFields {
	return EventFields{
		IssueNumber:      strings.TrimSpace(f.IssueNumber),
		IssueAuthorID:    strings.TrimSpace(f.IssueAuthorID),
		IssueTitle:       strings.TrimSpace(f.IssueTitle),
		CommentID:        strings.TrimSpace(f.CommentID),
		CommentBody:      strings.TrimSpace(f.CommentBody),
		CommentUserID:    strings.TrimSpace(f.CommentUserID),
		CommentURL:       strings.TrimSpace(f.CommentURL),
		CommentCreatedAt: strings.TrimSpace(f.CommentCreatedAt),
	}
}
