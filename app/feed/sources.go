package feed

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Sources holds the parsed source configuration. The file is read once at
// startup and can be reloaded; readers always see a consistent snapshot.
type Sources struct {
	file string
	cfg  *SourcesConfig
	mu   sync.RWMutex
}

func NewSources(file string) *Sources {
	return &Sources{file: file}
}

func (s *Sources) Run() error {
	return s.Load()
}

func (s *Sources) Load() error {
	cfg, err := s.parseConfig(s.file)
	if err != nil {
		return err
	}

	if err := s.validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid sources config %s: %w", s.file, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg

	return nil
}

// List returns the configured category sources in file order.
func (s *Sources) List() []Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sources := make([]Source, len(s.cfg.Sources))
	copy(sources, s.cfg.Sources)
	return sources
}

func (s *Sources) Backup() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Backup
}

func (s *Sources) Settings() SourceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Settings
}

func (s *Sources) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cfg.Sources)
}

// PublisherFor resolves the display name for a fetched URL by matching a
// known hostname fragment, falling back to the configured default.
func (s *Sources) PublisherFor(url string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.cfg.Publishers {
		if strings.Contains(url, p.Match) {
			return p.Name
		}
	}
	return s.cfg.Settings.DefaultSource
}

func (s *Sources) parseConfig(file string) (*SourcesConfig, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var cfg SourcesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range cfg.Sources {
		if cfg.Sources[i].Limit == 0 {
			cfg.Sources[i].Limit = 3
		}
	}
	if cfg.Backup.Limit == 0 {
		cfg.Backup.Limit = 10
	}
	if cfg.Settings.Timeout == 0 {
		cfg.Settings.Timeout = 10
	}
	if cfg.Settings.MinItems == 0 {
		cfg.Settings.MinItems = 1
	}
	if cfg.Settings.MaxItems == 0 {
		cfg.Settings.MaxItems = 100
	}
	if cfg.Settings.DefaultSource == "" {
		cfg.Settings.DefaultSource = "Newswire"
	}
	if cfg.Settings.UntitledLabel == "" {
		cfg.Settings.UntitledLabel = "Untitled"
	}
	if cfg.Settings.NoticeCategory == "" {
		cfg.Settings.NoticeCategory = "notice"
	}
	if cfg.Settings.NoticeTitle == "" {
		cfg.Settings.NoticeTitle = "News feeds are temporarily unavailable"
	}
	if cfg.Settings.NoticeSummary == "" {
		cfg.Settings.NoticeSummary = "None of the configured news sources could be reached. Please try again in a few minutes."
	}

	return &cfg, nil
}

func (s *Sources) validateConfig(cfg *SourcesConfig) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if len(cfg.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}

	for i, src := range cfg.Sources {
		if src.Category == "" {
			return fmt.Errorf("source at index %d: category is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source at index %d: URL is required", i)
		}
		if src.Limit < 0 {
			return fmt.Errorf("source at index %d: limit must be non-negative", i)
		}
	}

	nonNegativeFields := map[string]int{
		"timeout":   cfg.Settings.Timeout,
		"min items": cfg.Settings.MinItems,
		"max items": cfg.Settings.MaxItems,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	return nil
}
