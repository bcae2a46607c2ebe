package event

import (
	"errors"
	"strconv"

	"github.com/maxbolgarin/dvhook/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"
)

// ErrEmptyPayload is returned when there is nothing to notify about
var ErrEmptyPayload = errors.New("no payload data available")

// Builder turns raw event fields into a notification payload
type Builder struct {
	cfg    Config
	titles *TitleExtractor
	log    logze.Logger
}

// NewBuilder creates a new payload builder
func NewBuilder(cfg Config) (*Builder, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, errm.Wrap(err, "validate config")
	}
	return &Builder{
		cfg:    cfg,
		titles: NewTitleExtractor(cfg.TitleField),
		log:    logze.With("component", "event"),
	}, nil
}

// Collect trims env fields and fills the absent ones from the event file if it is enabled.
// Problems with the event file are logged and do not stop the dispatch.
func (b *Builder) Collect(env model.EventFields) model.EventFields {
	fields := env.Trim()
	if !b.cfg.UseEventFile {
		return fields
	}

	fromFile, err := ReadFile(b.cfg.EventPath)
	if err != nil {
		b.log.Warn("cannot use event file", "path", b.cfg.EventPath, "error", err)
		return fields
	}
	b.log.Debug("event file loaded", "path", b.cfg.EventPath)

	return fields.Merge(fromFile)
}

// Build creates a payload with present fields only.
// Integer fields that cannot be parsed are treated as absent.
func (b *Builder) Build(fields model.EventFields) (model.Payload, error) {
	fields = fields.Trim()

	payload := model.Payload{
		Type:             model.PayloadTypeGeneral,
		IssueNumber:      parseInt(fields.IssueNumber),
		IssueAuthorID:    parseInt(fields.IssueAuthorID),
		CommentID:        parseInt(fields.CommentID),
		CommentBody:      fields.CommentBody,
		CommentUserID:    parseInt(fields.CommentUserID),
		CommentURL:       fields.CommentURL,
		CommentCreatedAt: fields.CommentCreatedAt,
		ReportTitle:      b.titles.Extract(fields.IssueTitle),
	}

	if payload.IsEmpty() {
		return model.Payload{}, ErrEmptyPayload
	}

	return payload, nil
}

// parseInt accepts base 10 int64 values only, digit separators like 1_000 are not supported
func parseInt(value string) *int64 {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
