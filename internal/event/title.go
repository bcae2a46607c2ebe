package event

import "regexp"

// TitleExtractor finds a key="value" token in a plain text issue title.
// Quotes inside a value are not supported, the value ends at the first quote.
type TitleExtractor struct {
	re *regexp.Regexp
}

// NewTitleExtractor returns nil if field is empty
func NewTitleExtractor(field string) *TitleExtractor {
	if field == "" {
		return nil
	}
	return &TitleExtractor{
		re: regexp.MustCompile(`\b` + regexp.QuoteMeta(field) + `="([^"]*)"`),
	}
}

// Extract returns the first matched value, empty string means there is no value
func (e *TitleExtractor) Extract(title string) string {
	if e == nil || title == "" {
		return ""
	}
	m := e.re.FindStringSubmatch(title)
	if m == nil {
		return ""
	}
	return m[1]
}
