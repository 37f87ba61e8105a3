package analysis

import "time"

// Kind identifies one analysis task.
type Kind string

const (
	KindSummary      Kind = "summary"
	KindCompare      Kind = "comparison"
	KindContext      Kind = "context"
	KindFactCheck    Kind = "factcheck"
	KindTitleRewrite Kind = "titleRewrite"
	KindTest         Kind = "test"
)

// Result is the outcome of one free-text analysis task.
type Result struct {
	Text       string
	AnalyzedAt time.Time
}

// TitleRewriteResult carries the structured title-rewrite outcome. When the
// model reply could not be parsed, RewrittenTitle falls back to the original
// title and ClickbaitReason carries the raw reply text.
type TitleRewriteResult struct {
	RewrittenTitle  string
	ClickbaitReason string
	OriginalTitle   string
	AnalyzedAt      time.Time
}

// ErrorKind distinguishes failure categories internally. The external
// contract stays a single error message; the kind feeds diagnostics.
type ErrorKind string

const (
	ErrorKindNotConfigured ErrorKind = "not_configured"
	ErrorKindTimeout       ErrorKind = "timeout"
	ErrorKindUpstream      ErrorKind = "upstream"
	ErrorKindInvalidInput  ErrorKind = "invalid_input"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
