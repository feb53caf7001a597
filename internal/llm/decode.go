package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON unmarshals a model response into v, tolerating the
// decoration models habitually add around JSON: markdown code fences
// (```json ... ```) and prose before or after the payload. The
// outermost JSON object or array is located and everything around it
// is discarded. Any remaining parse failure is returned to the caller,
// which is expected to fall back to canned content rather than
// propagate the error.
func DecodeJSON(raw string, v any) error {
	cleaned := StripCodeFences(raw)

	start, end := -1, -1
	if i := strings.IndexAny(cleaned, "{["); i != -1 {
		start = i
		if cleaned[i] == '{' {
			end = strings.LastIndex(cleaned, "}")
		} else {
			end = strings.LastIndex(cleaned, "]")
		}
	}
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON payload found in model response")
	}

	if err := json.Unmarshal([]byte(cleaned[start:end+1]), v); err != nil {
		return fmt.Errorf("decode model response: %w", err)
	}
	return nil
}

// StripCodeFences removes leading/trailing markdown fence markers.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
