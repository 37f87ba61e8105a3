package feed

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// idRange bounds item ids to keep them short. The hash is not
// collision-resistant; duplicate ids across items are accepted.
const idRange = 100000

// Fetcher retrieves and normalizes one category feed at a time. A failed or
// malformed feed contributes zero items and is logged; it never aborts the
// aggregate request.
type Fetcher struct {
	httpClient *http.Client
	parser     *Parser
	sources    *Sources
	userAgent  string
}

func NewFetcher(sources *Sources, userAgent string) *Fetcher {
	timeout := time.Duration(sources.Settings().Timeout) * time.Second

	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		parser:     NewParser(),
		sources:    sources,
		userAgent:  userAgent,
	}
}

// FetchCategory returns up to limit items from url, each stamped with the
// given category label.
func (f *Fetcher) FetchCategory(ctx context.Context, url, category string, limit int) []Item {
	data, err := f.fetch(ctx, url)
	if err != nil {
		slog.Warn("Feed fetch failed", "category", category, "url", url, "error", err)
		return nil
	}

	entries, err := f.parser.Run(data)
	if err != nil {
		slog.Warn("Feed parse failed", "category", category, "url", url, "error", err)
		return nil
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}

	settings := f.sources.Settings()
	source := f.sources.PublisherFor(url)

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		link := entry.Link
		if link == "" {
			// Some sources only carry the canonical URL in <guid>
			link = entry.GUID
		}

		title := CleanHTML(entry.Title)
		if title == "" {
			title = settings.UntitledLabel
		}

		publishedAt := entry.Published
		if publishedAt == "" {
			publishedAt = time.Now().Format(time.RFC3339)
		}

		items = append(items, Item{
			ID:          itemID(link, i),
			Title:       title,
			Summary:     Truncate(CleanHTML(entry.Description), MaxSummaryLength),
			Category:    category,
			Source:      source,
			Link:        link,
			PublishedAt: publishedAt,
		})
	}

	slog.Debug("Category fetched", "category", category, "items", len(items))
	return items
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// itemID hashes the article link into [0, idRange). Items without a link use
// their position in the feed instead.
func itemID(link string, index int) int {
	if link == "" {
		return index
	}

	h := fnv.New32a()
	h.Write([]byte(link))
	return int(h.Sum32() % idRange)
}
