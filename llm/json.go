package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of raw model output. Models often
// wrap the object in markdown fences or surrounding prose, so the
// extraction is tried in order of strictness: the whole string, the
// contents of a ```json fence, then the span between the first '{' and
// the last '}'.
func ExtractJSON(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if json.Valid([]byte(trimmed)) && strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	if fenced, ok := extractFenced(trimmed); ok {
		if json.Valid([]byte(fenced)) {
			return fenced, nil
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
		return "", &ParsingError{
			Reason:  ParsingReasonWrongShape,
			Message: "content contains malformed JSON",
			Raw:     content,
		}
	}

	// No braces anywhere: the model answered in prose or declined.
	return "", &ParsingError{
		Reason:  ParsingReasonRefusal,
		Message: "content contains no JSON object",
		Raw:     content,
	}
}

func extractFenced(content string) (string, bool) {
	for _, marker := range []string{"```json", "```"} {
		start := strings.Index(content, marker)
		if start < 0 {
			continue
		}
		rest := content[start+len(marker):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		return strings.TrimSpace(rest[:end]), true
	}
	return "", false
}
