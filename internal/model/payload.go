package model

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/errm"
)

// PayloadTypeGeneral is the only notification type the receiver understands
const PayloadTypeGeneral = "general"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Payload is the notification sent to the webhook.
// Absent fields are nil or empty and never appear in the encoded JSON.
type Payload struct {
	Type             string `json:"type"`
	IssueNumber      *int64 `json:"issueNumber,omitempty"`
	IssueAuthorID    *int64 `json:"issueAuthorId,omitempty"`
	CommentID        *int64 `json:"commentId,omitempty"`
	CommentBody      string `json:"commentBody,omitempty"`
	CommentUserID    *int64 `json:"commentUserId,omitempty"`
	CommentURL       string `json:"commentUrl,omitempty"`
	CommentCreatedAt string `json:"commentCreatedAt,omitempty"`
	ReportTitle      string `json:"reportTitle,omitempty"`
}

// IsEmpty returns true if nothing except the payload type is set
func (p Payload) IsEmpty() bool {
	return p.IssueNumber == nil &&
		p.IssueAuthorID == nil &&
		p.CommentID == nil &&
		p.CommentBody == "" &&
		p.CommentUserID == nil &&
		p.CommentURL == "" &&
		p.CommentCreatedAt == "" &&
		p.ReportTitle == ""
}

// IsSelfComment returns true if the comment was written by the issue author
func (p Payload) IsSelfComment() bool {
	return p.CommentUserID != nil && p.IssueAuthorID != nil && *p.CommentUserID == *p.IssueAuthorID
}

// Marshal returns compact JSON used as a request body
func (p Payload) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errm.Wrap(err, "marshal payload")
	}
	return data, nil
}

// Pretty returns indented JSON for logs
func (p Payload) Pretty() (string, error) {
	data, err := json.MarshalIndent(p, "", " ")
	if err != nil {
		return "", errm.Wrap(err, "marshal payload")
	}
	return string(data), nil
}
