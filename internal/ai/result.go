package ai

import (
	"encoding/json"
	"strings"
)

// Sentinel keys of Result.Map for the raw and failed variants.
const (
	KeyRawResponse = "raw_response"
	KeyError       = "error"
)

// Result is one analysis outcome: structured data, raw text that did not
// parse, or a failure. Exactly one of Data, Raw and Err is meaningful,
// checked in the order Err, Data.
type Result struct {
	Data map[string]any
	Raw  string
	Err  error
}

func Failed(err error) Result {
	return Result{Err: err}
}

func (r Result) Structured() bool {
	return r.Err == nil && r.Data != nil
}

// Map renders the result as a single object: the parsed data, or the
// sentinel {"raw_response": ...} / {"error": ...}.
func (r Result) Map() map[string]any {
	switch {
	case r.Err != nil:
		return map[string]any{KeyError: r.Err.Error()}
	case r.Data != nil:
		return r.Data
	default:
		return map[string]any{KeyRawResponse: r.Raw}
	}
}

// ParseReply strips markdown fences and decodes the payload. A top-level
// array is wrapped as {"fields": [...]}.
func ParseReply(reply string) Result {
	payload := cleanMarkdownJSON(reply)

	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return Result{Raw: payload}
	}
	switch t := v.(type) {
	case map[string]any:
		return Result{Data: t}
	case []any:
		return Result{Data: map[string]any{"fields": t}}
	}
	return Result{Raw: payload}
}

// cleanMarkdownJSON keeps what sits inside the first ```json fence, else
// inside the first plain ``` fence, else the whole text.
func cleanMarkdownJSON(content string) string {
	if _, after, ok := strings.Cut(content, "```json"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	if _, after, ok := strings.Cut(content, "```"); ok {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(content)
}
