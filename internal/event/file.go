package event

import (
	"os"
	"strconv"
	"time"

	"github.com/google/go-github/v57/github"
	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/dvhook/internal/model"
	"github.com/maxbolgarin/errm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReadFile reads an issue_comment event written by GitHub Actions
func ReadFile(path string) (model.EventFields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EventFields{}, errm.Wrap(err, "read event file")
	}

	var ev github.IssueCommentEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return model.EventFields{}, errm.Wrap(err, "decode event file")
	}

	return fieldsFromEvent(&ev).Trim(), nil
}

func fieldsFromEvent(ev *github.IssueCommentEvent) model.EventFields {
	var out model.EventFields

	if issue := ev.GetIssue(); issue != nil {
		if issue.Number != nil {
			out.IssueNumber = strconv.Itoa(issue.GetNumber())
		}
		if user := issue.GetUser(); user != nil && user.ID != nil {
			out.IssueAuthorID = strconv.FormatInt(user.GetID(), 10)
		}
		out.IssueTitle = issue.GetTitle()
	}

	if comment := ev.GetComment(); comment != nil {
		if comment.ID != nil {
			out.CommentID = strconv.FormatInt(comment.GetID(), 10)
		}
		if user := comment.GetUser(); user != nil && user.ID != nil {
			out.CommentUserID = strconv.FormatInt(user.GetID(), 10)
		}
		out.CommentBody = comment.GetBody()
		out.CommentURL = comment.GetHTMLURL()
		if createdAt := comment.GetCreatedAt(); !createdAt.IsZero() {
			out.CommentCreatedAt = createdAt.UTC().Format(time.RFC3339)
		}
	}

	return out
}
