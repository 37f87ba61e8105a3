package analysis

import (
	"testing"
)

func TestExtractFencedJSONTaggedFence(t *testing.T) {
	raw := "Here is the result you asked for:\n```json\n{\"rewrittenTitle\":\"A\",\"clickbaitReason\":\"B\"}\n```\nLet me know if you need anything else."

	got := extractFencedJSON(raw)
	if got != `{"rewrittenTitle":"A","clickbaitReason":"B"}` {
		t.Errorf("Unexpected candidate: '%s'", got)
	}
}

func TestExtractFencedJSONPlainFence(t *testing.T) {
	raw := "Sure:\n```\n{\"rewrittenTitle\":\"A\"}\n```"

	got := extractFencedJSON(raw)
	if got != `{"rewrittenTitle":"A"}` {
		t.Errorf("Unexpected candidate: '%s'", got)
	}
}

func TestExtractFencedJSONNoFence(t *testing.T) {
	raw := "  {\"rewrittenTitle\":\"A\"}  "

	got := extractFencedJSON(raw)
	if got != `{"rewrittenTitle":"A"}` {
		t.Errorf("Unexpected candidate: '%s'", got)
	}
}

func TestExtractFencedJSONUnclosedFence(t *testing.T) {
	raw := "```json\n{\"rewrittenTitle\":\"A\"}"

	got := extractFencedJSON(raw)
	if got != `{"rewrittenTitle":"A"}` {
		t.Errorf("Expected remainder after unclosed fence, got '%s'", got)
	}
}

func TestParseTitleRewrite(t *testing.T) {
	raw := "```json\n{\"rewrittenTitle\":\"A\",\"clickbaitReason\":\"B\"}\n```"

	rewritten, reason := parseTitleRewrite(raw, "Original")
	if rewritten != "A" {
		t.Errorf("Expected rewritten title 'A', got '%s'", rewritten)
	}
	if reason != "B" {
		t.Errorf("Expected reason 'B', got '%s'", reason)
	}
}

func TestParseTitleRewriteNotJSON(t *testing.T) {
	rewritten, reason := parseTitleRewrite("not json at all", "Original")
	if rewritten != "Original" {
		t.Errorf("Expected original title on parse failure, got '%s'", rewritten)
	}
	if reason != "not json at all" {
		t.Errorf("Expected raw text as reason, got '%s'", reason)
	}
}

func TestParseTitleRewriteMissingFields(t *testing.T) {
	rewritten, reason := parseTitleRewrite(`{"unrelated": true}`, "Original")
	if rewritten != "Original" {
		t.Errorf("Expected original title default, got '%s'", rewritten)
	}
	if reason != "No analysis result" {
		t.Errorf("Expected placeholder reason, got '%s'", reason)
	}
}
