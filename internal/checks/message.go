package checks

import "github.com/abramin/annolint/internal/pyast"

// Message is the reporting-facing form of a diagnostic: the code, the
// interpolated message body, the source range, and the optional fix. Unlike
// Check it is a plain value, so it serializes cleanly for the result cache.
type Message struct {
	Code  Code        `json:"code"`
	Body  string      `json:"body"`
	Range pyast.Range `json:"range"`
	Fix   *Fix        `json:"fix,omitempty"`
}

// Message flattens the diagnostic for reporting and caching.
func (c *Check) Message() Message {
	return Message{
		Code:  c.Kind.Code(),
		Body:  c.Kind.Body(),
		Range: c.Range,
		Fix:   c.Fix,
	}
}
