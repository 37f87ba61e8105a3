package cfg

type Cfg struct {
	// Application configuration
	Port        string
	SourcesFile string
	DBPath      string
	CacheTTL    int

	// LLM provider configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Background refresh configuration
	SchedulerInterval int
	WorkerCount       int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}

// IsAnalysisConfigured reports whether an LLM credential is present.
// An absent credential is a valid state: analysis endpoints answer with a
// "not configured" payload instead of failing at startup.
func (c *Cfg) IsAnalysisConfigured() bool {
	return c.OpenAIAPIKey != ""
}
