package openrouter

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of a model reply and unmarshals it
// into v, reporting whether it succeeded.
//
// Models asked for JSON frequently wrap it in prose ("Here is the
// analysis: {...} Let me know if..."), so the reply is scanned for the
// first '{' and the last '}' and that single greedy span is parsed. A
// reply with no braces, or whose span is not valid JSON, yields false
// rather than an error: extraction failure is an expected condition that
// callers absorb by substituting their default record, not a reason to
// abort a run.
//
// The greedy span is deliberate. When a reply contains several JSON-like
// spans the combined span usually fails to parse and the caller falls back
// to defaults, which matches how lenient extraction is expected to behave
// here. On failure v may be partially populated; callers must treat it as
// undefined and replace it wholesale.
func ExtractJSON(text string, v any) bool {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(text[start:end+1]), v) == nil
}
