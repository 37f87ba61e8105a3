package analysis

import (
	"encoding/json"
	"strings"
)

const jsonFence = "```json"
const fence = "```"

// extractFencedJSON returns the best JSON candidate from a free-text model
// reply: the body of a json-tagged fence if present, otherwise the body of
// the first fenced block, otherwise the trimmed text itself. A missing
// closing fence takes the remainder of the text.
func extractFencedJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if idx := strings.Index(text, jsonFence); idx >= 0 {
		rest := text[idx+len(jsonFence):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	if idx := strings.Index(text, fence); idx >= 0 {
		rest := text[idx+len(fence):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}

	return text
}

// parseTitleRewrite reads the structured rewrite out of a model reply. Parse
// failure is not an error: the original title comes back unchanged and the
// raw candidate text becomes the reason, so callers always get a usable pair.
func parseTitleRewrite(raw, originalTitle string) (string, string) {
	candidate := extractFencedJSON(raw)

	var payload struct {
		RewrittenTitle  string `json:"rewrittenTitle"`
		ClickbaitReason string `json:"clickbaitReason"`
	}

	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return originalTitle, candidate
	}

	rewritten := payload.RewrittenTitle
	if rewritten == "" {
		rewritten = originalTitle
	}

	reason := payload.ClickbaitReason
	if reason == "" {
		reason = "No analysis result"
	}

	return rewritten, reason
}
