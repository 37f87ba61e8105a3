package feed

import (
	"regexp"
	"strings"
)

// MaxSummaryLength bounds the cleaned summary text.
const MaxSummaryLength = 500

var tagPattern = regexp.MustCompile(`<[^>]+>`)

var entityReplacer = strings.NewReplacer(
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", " ",
)

// CleanHTML strips tag markup and unescapes the five common entities. This is
// deliberately not a full HTML parse; unusual entities or malformed markup
// may leak through.
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}

	clean := tagPattern.ReplaceAllString(text, "")
	clean = entityReplacer.Replace(clean)
	return strings.TrimSpace(clean)
}

// Truncate bounds text to max runes, not bytes, so multi-byte scripts are
// never cut mid-character.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
