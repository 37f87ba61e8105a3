package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrNotFound is returned when a news id is absent from the current listing
// and the archive.
var ErrNotFound = errors.New("news item not found")

// Archive persists fetched items so detail lookups can survive a listing
// refresh. Implemented by database.ItemRepository.
type Archive interface {
	UpsertItems(items []Item) error
	GetItem(itemID int) (*Item, error)
}

// trendingTopics is intentionally static placeholder data, not derived from
// fetched items.
var trendingTopics = []Topic{
	{Keyword: "economy", Count: 1250, Category: "economy"},
	{Keyword: "politics", Count: 980, Category: "politics"},
	{Keyword: "technology", Count: 756, Category: "tech"},
	{Keyword: "society", Count: 540, Category: "society"},
}

// Service assembles news listings with a multi-tier fallback: configured
// category sources, then the backup feed, then a single placeholder item.
// Callers always receive at least one item.
type Service struct {
	fetcher *Fetcher
	sources *Sources
	archive Archive // optional

	cacheTTL time.Duration
	mu       sync.RWMutex
	cached   []Item
	cachedAt time.Time
}

func NewService(fetcher *Fetcher, sources *Sources, archive Archive, cacheTTL time.Duration) *Service {
	return &Service{
		fetcher:  fetcher,
		sources:  sources,
		archive:  archive,
		cacheTTL: cacheTTL,
	}
}

// ListNews returns the current aggregate listing, served from a short-lived
// cache when fresh.
func (s *Service) ListNews(ctx context.Context) []Item {
	if items, ok := s.cachedItems(); ok {
		return items
	}
	return s.Refresh(ctx)
}

// Refresh re-runs the ingestion pipeline regardless of cache freshness and
// stores the result. It never fails: exhausted sources yield the placeholder
// item.
func (s *Service) Refresh(ctx context.Context) []Item {
	var all []Item

	for _, src := range s.sources.List() {
		items := s.fetcher.FetchCategory(ctx, src.URL, src.Category, src.Limit)
		all = append(all, items...)
	}

	settings := s.sources.Settings()

	if len(all) < settings.MinItems {
		backup := s.sources.Backup()
		if backup.URL != "" {
			slog.Warn("Primary sources below threshold, querying backup feed",
				"items", len(all), "min_items", settings.MinItems)
			items := s.fetcher.FetchCategory(ctx, backup.URL, backup.Category, backup.Limit)
			all = append(all, items...)
		}
	}

	if len(all) == 0 {
		slog.Error("All news sources exhausted, returning placeholder item")
		all = []Item{s.placeholderItem(settings)}
	}

	if len(all) > settings.MaxItems {
		all = all[:settings.MaxItems]
	}

	if s.archive != nil {
		if err := s.archive.UpsertItems(all); err != nil {
			slog.Warn("Failed to archive news items", "error", err)
		}
	}

	s.mu.Lock()
	s.cached = all
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return copyItems(all)
}

// TodayBriefing returns today's date with the first 10 items of the listing.
func (s *Service) TodayBriefing(ctx context.Context) (string, []Item) {
	items := s.ListNews(ctx)
	if len(items) > 10 {
		items = items[:10]
	}
	return time.Now().Format(time.RFC3339), items
}

// Trending returns the static topic set. Output is identical across calls.
func (s *Service) Trending() []Topic {
	topics := make([]Topic, len(trendingTopics))
	copy(topics, trendingTopics)
	return topics
}

// NewsDetail scans the current listing for id, falling back to the archive
// when the live listing no longer contains it.
func (s *Service) NewsDetail(ctx context.Context, id int) (*Item, error) {
	for _, item := range s.ListNews(ctx) {
		if item.ID == id {
			return &item, nil
		}
	}

	if s.archive != nil {
		item, err := s.archive.GetItem(id)
		if err != nil {
			slog.Warn("Archive lookup failed", "id", id, "error", err)
		} else if item != nil {
			return item, nil
		}
	}

	return nil, ErrNotFound
}

func (s *Service) cachedItems() ([]Item, bool) {
	if s.cacheTTL <= 0 {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cached == nil || time.Since(s.cachedAt) > s.cacheTTL {
		return nil, false
	}
	return copyItems(s.cached), true
}

func (s *Service) placeholderItem(settings SourceSettings) Item {
	return Item{
		ID:          1,
		Title:       settings.NoticeTitle,
		Summary:     settings.NoticeSummary,
		Category:    settings.NoticeCategory,
		Source:      settings.DefaultSource,
		PublishedAt: time.Now().Format(time.RFC3339),
	}
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
