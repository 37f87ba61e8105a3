package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Entry is one raw feed entry before cleanup and id assignment.
type Entry struct {
	Title       string
	Description string
	Link        string
	GUID        string
	Published   string
}

// Parser handles parsing of RSS/Atom feed payloads
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses feed data and returns its entries in document order.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, Entry{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			GUID:        item.GUID,
			Published:   item.Published,
		})
	}

	return entries, nil
}
