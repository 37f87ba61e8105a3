package feed

// News item types

// Item is one normalized article summary. IDs are a stable hash of the
// article link reduced into a short range; collisions are accepted, so an ID
// is only meaningful for lookups within a single listing.
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	PublishedAt string `json:"publishedAt"`
	AISummary   string `json:"aiSummary"`
}

// Topic is one trending keyword entry.
type Topic struct {
	Keyword  string `json:"keyword"`
	Count    int    `json:"count"`
	Category string `json:"category"`
}

// Configuration types

type SourcesConfig struct {
	Sources    []Source       `yaml:"sources"`
	Backup     Source         `yaml:"backup"`
	Publishers []Publisher    `yaml:"publishers"`
	Settings   SourceSettings `yaml:"settings"`
}

type Source struct {
	Category string `yaml:"category"`
	URL      string `yaml:"url"`
	Limit    int    `yaml:"limit"`
}

// Publisher maps a hostname fragment to a display name for the source field.
type Publisher struct {
	Match string `yaml:"match"`
	Name  string `yaml:"name"`
}

type SourceSettings struct {
	Timeout        int    `yaml:"timeout"` // seconds
	MinItems       int    `yaml:"min_items"`
	MaxItems       int    `yaml:"max_items"`
	DefaultSource  string `yaml:"default_source"`
	UntitledLabel  string `yaml:"untitled_label"`
	NoticeCategory string `yaml:"notice_category"`
	NoticeTitle    string `yaml:"notice_title"`
	NoticeSummary  string `yaml:"notice_summary"`
}
