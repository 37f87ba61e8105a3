package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// defaultCallTimeout bounds one generation call. The provider failure maps to
// the same error shape as any other upstream failure.
const defaultCallTimeout = 60 * time.Second

// ContentExtractor resolves an article URL into readable text. Implemented by
// feed.ContentExtractor.
type ContentExtractor interface {
	Run(ctx context.Context, pageURL string) (string, error)
}

// Service wraps one external generation call per task with a task-specific
// instruction template. Every failure is returned as data, never propagated
// as a fault to the transport layer.
type Service struct {
	client    Client // nil when no credential is configured
	extractor ContentExtractor
	timeout   time.Duration
}

func NewService(client Client, extractor ContentExtractor) *Service {
	return &Service{
		client:    client,
		extractor: extractor,
		timeout:   defaultCallTimeout,
	}
}

// Run executes one free-text analysis task. When text is an article URL, the
// page content is extracted and analyzed instead.
func (s *Service) Run(ctx context.Context, kind Kind, text string) (*Result, error) {
	if s.client == nil {
		return nil, errNotConfigured()
	}

	tpl, ok := prompts[kind]
	if !ok {
		return nil, &Error{Kind: ErrorKindInvalidInput, Message: fmt.Sprintf("unknown analysis task: %s", kind)}
	}

	input := s.resolveInput(ctx, text)

	out, err := s.generate(ctx, tpl.system, input, tpl.maxTokens)
	if err != nil {
		return nil, s.classified(kind, err)
	}

	return &Result{Text: out, AnalyzedAt: time.Now()}, nil
}

// RewriteTitle produces an objective title plus a clickbait explanation. The
// model reply goes through two-tier extraction: structured JSON when
// parseable, otherwise the raw reply as the reason.
func (s *Service) RewriteTitle(ctx context.Context, title, content string) (*TitleRewriteResult, error) {
	if s.client == nil {
		return nil, errNotConfigured()
	}

	tpl := prompts[KindTitleRewrite]
	user := fmt.Sprintf("Original title: %s\n\nArticle body:\n%s", title, s.resolveInput(ctx, content))

	out, err := s.generate(ctx, tpl.system, user, tpl.maxTokens)
	if err != nil {
		return nil, s.classified(KindTitleRewrite, err)
	}

	rewritten, reason := parseTitleRewrite(out, title)

	return &TitleRewriteResult{
		RewrittenTitle:  rewritten,
		ClickbaitReason: reason,
		OriginalTitle:   title,
		AnalyzedAt:      time.Now(),
	}, nil
}

// Test performs a minimal connectivity check against the provider.
func (s *Service) Test(ctx context.Context) (*Result, error) {
	if s.client == nil {
		return nil, errNotConfigured()
	}

	tpl := prompts[KindTest]
	out, err := s.generate(ctx, tpl.system, testPrompt, tpl.maxTokens)
	if err != nil {
		return nil, s.classified(KindTest, err)
	}

	return &Result{Text: out, AnalyzedAt: time.Now()}, nil
}

func (s *Service) generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.client.Generate(callCtx, system, user, maxTokens)
}

// resolveInput swaps an article URL for its extracted text. Extraction
// failure falls back to the raw input rather than failing the task.
func (s *Service) resolveInput(ctx context.Context, text string) string {
	if s.extractor == nil || !isArticleURL(text) {
		return text
	}

	extracted, err := s.extractor.Run(ctx, text)
	if err != nil {
		slog.Warn("Article extraction failed, analyzing raw input", "url", text, "error", err)
		return text
	}
	return extracted
}

func (s *Service) classified(kind Kind, err error) *Error {
	classified := classify(err)
	slog.Error("Analysis call failed", "kind", kind, "error_kind", classified.Kind, "error", err)
	return classified
}

func errNotConfigured() *Error {
	return &Error{
		Kind:    ErrorKindNotConfigured,
		Message: "analysis API key not configured",
	}
}

func classify(err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: ErrorKindTimeout, Message: err.Error()}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: ErrorKindUpstream, Message: apiErr.Message}
	}

	return &Error{Kind: ErrorKindUpstream, Message: err.Error()}
}

func isArticleURL(text string) bool {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return false
	}
	if strings.ContainsAny(trimmed, " \t\n") {
		return false
	}

	u, err := url.Parse(trimmed)
	return err == nil && u.Host != ""
}
