package llm

import "strings"

// ExtractJSON strips markdown code fences from a model response so the
// remainder can be handed to json.Unmarshal. Handles a leading ``` or
// ```json fence line, a trailing ``` line, and surrounding whitespace.
// Anything else is returned trimmed; callers treat parse failures as a
// service failure, never as a crash.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			fence := strings.TrimSpace(s[3:idx])
			if fence == "" || strings.EqualFold(fence, "json") {
				s = s[idx+1:]
			}
		}
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}
