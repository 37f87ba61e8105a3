package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

type fakeArchive struct {
	saved []Item
	items map[int]*Item
	err   error
}

func (a *fakeArchive) UpsertItems(items []Item) error {
	a.saved = append(a.saved, items...)
	return a.err
}

func (a *fakeArchive) GetItem(itemID int) (*Item, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.items[itemID], nil
}

func singleItemFeed(title, link string) string {
	return fmt.Sprintf(`<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Feed</title>
    <item>
      <title>%s</title>
      <link>%s</link>
      <description>Description of %s</description>
    </item>
  </channel>
</rss>`, title, link, title)
}

func TestListNewsAggregatesInConfiguredOrder(t *testing.T) {
	politics := rssServer(t, singleItemFeed("Politics Story", "https://example.com/p1"))
	defer politics.Close()
	economy := rssServer(t, singleItemFeed("Economy Story", "https://example.com/e1"))
	defer economy.Close()

	sources := testSources(&SourcesConfig{
		Sources: []Source{
			{Category: "politics", URL: politics.URL, Limit: 3},
			{Category: "economy", URL: economy.URL, Limit: 3},
		},
	})

	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, 0)
	items := service.ListNews(context.Background())

	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Category != "politics" || items[1].Category != "economy" {
		t.Errorf("Expected configured category order, got %s, %s", items[0].Category, items[1].Category)
	}
}

func TestListNewsBackupTier(t *testing.T) {
	backup := rssServer(t, singleItemFeed("Backup Story", "https://example.com/b1"))
	defer backup.Close()

	sources := testSources(&SourcesConfig{
		Sources: []Source{
			{Category: "politics", URL: "http://127.0.0.1:0/down", Limit: 3},
		},
		Backup: Source{Category: "general", URL: backup.URL, Limit: 10},
	})

	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, 0)
	items := service.ListNews(context.Background())

	if len(items) != 1 {
		t.Fatalf("Expected 1 backup item, got %d", len(items))
	}
	if items[0].Category != "general" {
		t.Errorf("Expected backup category 'general', got '%s'", items[0].Category)
	}
}

func TestListNewsPlaceholderTier(t *testing.T) {
	sources := testSources(&SourcesConfig{
		Sources: []Source{
			{Category: "politics", URL: "http://127.0.0.1:0/down", Limit: 3},
		},
		Backup: Source{Category: "general", URL: "http://127.0.0.1:0/also-down", Limit: 10},
	})

	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, 0)
	items := service.ListNews(context.Background())

	if len(items) != 1 {
		t.Fatalf("Expected exactly one placeholder item, got %d", len(items))
	}
	if items[0].Title == "" {
		t.Error("Placeholder item must have a non-empty title")
	}
	if items[0].Category != "notice" {
		t.Errorf("Expected placeholder category 'notice', got '%s'", items[0].Category)
	}
}

func TestListNewsCaching(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(singleItemFeed("Cached Story", "https://example.com/c1")))
	}))
	defer server.Close()

	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: server.URL, Limit: 3}},
	})

	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, time.Minute)

	service.ListNews(context.Background())
	service.ListNews(context.Background())

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("Expected 1 upstream fetch with a warm cache, got %d", got)
	}

	service.Refresh(context.Background())
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("Expected Refresh to bypass the cache, got %d fetches", got)
	}
}

func TestTodayBriefingBounds(t *testing.T) {
	var body string
	body = `<?xml version="1.0"?><rss version="2.0"><channel><title>Feed</title>`
	for i := 0; i < 15; i++ {
		body += fmt.Sprintf(`<item><title>Story %d</title><link>https://example.com/%d</link></item>`, i, i)
	}
	body += `</channel></rss>`

	server := rssServer(t, body)
	defer server.Close()

	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: server.URL, Limit: 15}},
	})

	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, 0)
	date, items := service.TodayBriefing(context.Background())

	if date == "" {
		t.Error("Expected a non-empty date")
	}
	if len(items) != 10 {
		t.Errorf("Expected briefing capped at 10 items, got %d", len(items))
	}
}

func TestTrendingIsStatic(t *testing.T) {
	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: "http://127.0.0.1:0/down", Limit: 3}},
	})
	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, 0)

	first := service.Trending()
	second := service.Trending()

	if len(first) == 0 {
		t.Fatal("Expected static trending topics")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Trending output must be identical across calls")
	}

	// Mutating a returned slice must not leak into later calls
	first[0].Keyword = "mutated"
	if service.Trending()[0].Keyword == "mutated" {
		t.Error("Trending must return a copy")
	}
}

func TestNewsDetail(t *testing.T) {
	server := rssServer(t, singleItemFeed("Detail Story", "https://example.com/d1"))
	defer server.Close()

	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: server.URL, Limit: 3}},
	})
	service := NewService(NewFetcher(sources, "Test Agent"), sources, nil, time.Minute)

	items := service.ListNews(context.Background())
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	item, err := service.NewsDetail(context.Background(), items[0].ID)
	if err != nil {
		t.Fatalf("Expected detail hit, got error: %v", err)
	}
	if item.Title != "Detail Story" {
		t.Errorf("Expected 'Detail Story', got '%s'", item.Title)
	}

	if _, err := service.NewsDetail(context.Background(), items[0].ID+1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for absent id, got %v", err)
	}
}

func TestNewsDetailArchiveFallback(t *testing.T) {
	server := rssServer(t, singleItemFeed("Live Story", "https://example.com/live"))
	defer server.Close()

	archived := &Item{ID: 4242, Title: "Archived Story", Category: "economy"}
	archive := &fakeArchive{items: map[int]*Item{4242: archived}}

	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: server.URL, Limit: 3}},
	})
	service := NewService(NewFetcher(sources, "Test Agent"), sources, archive, time.Minute)

	item, err := service.NewsDetail(context.Background(), 4242)
	if err != nil {
		t.Fatalf("Expected archive fallback hit, got error: %v", err)
	}
	if item.Title != "Archived Story" {
		t.Errorf("Expected 'Archived Story', got '%s'", item.Title)
	}

	if len(archive.saved) == 0 {
		t.Error("Expected fetched items to be archived")
	}
}

func TestArchiveFailureDoesNotBreakListing(t *testing.T) {
	server := rssServer(t, singleItemFeed("Story", "https://example.com/s1"))
	defer server.Close()

	archive := &fakeArchive{err: errors.New("disk full")}
	sources := testSources(&SourcesConfig{
		Sources: []Source{{Category: "politics", URL: server.URL, Limit: 3}},
	})
	service := NewService(NewFetcher(sources, "Test Agent"), sources, archive, 0)

	items := service.ListNews(context.Background())
	if len(items) != 1 {
		t.Errorf("Expected listing to survive archive failure, got %d items", len(items))
	}
}
