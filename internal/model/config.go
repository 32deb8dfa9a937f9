package model

import "time"

// Config is the complete runtime configuration, loadable from
// ~/.redline/config.yaml via viper and overridable by flags.
type Config struct {
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	HTTP     HTTPConfig     `yaml:"http" mapstructure:"http"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Patterns PatternConfig  `yaml:"patterns" mapstructure:"patterns"`
}

// LLMConfig configures the optional language-model provider.
type LLMConfig struct {
	Provider    string  `yaml:"provider" mapstructure:"provider"`       // gemini, openai, or empty to disable
	Model       string  `yaml:"model" mapstructure:"model"`             // provider-specific model name
	APIKey      string  `yaml:"api_key" mapstructure:"api_key"`         // from env in practice
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`       // custom endpoint (OpenAI-compatible)
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`   // response token cap
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"` // sampling temperature
	Timeout     int     `yaml:"timeout" mapstructure:"timeout"`         // per-call timeout in seconds
}

// CacheConfig configures the analysis cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir"` // disk cache directory, empty for memory-only
}

// AnalysisConfig holds the tuning constants of the detection pipeline.
type AnalysisConfig struct {
	ChunkSize        int `yaml:"chunk_size" mapstructure:"chunk_size"`                 // chars per chunk
	ChunkOverlap     int `yaml:"chunk_overlap" mapstructure:"chunk_overlap"`           // chars shared between neighbors
	MaxLLMChunks     int `yaml:"max_llm_chunks" mapstructure:"max_llm_chunks"`         // chunks sent to the LLM
	ChunkWorkers     int `yaml:"chunk_workers" mapstructure:"chunk_workers"`           // concurrent chunk analyses
	MaxMergedClauses int `yaml:"max_merged_clauses" mapstructure:"max_merged_clauses"` // cap after LLM+heuristic merge
	MaxClauses       int `yaml:"max_clauses" mapstructure:"max_clauses"`               // final cap after position dedup
	MaxHeuristic     int `yaml:"max_heuristic" mapstructure:"max_heuristic"`           // heuristic safety-net cap
	RefineTop        int `yaml:"refine_top" mapstructure:"refine_top"`                 // clauses sent to the refiner
	SummaryMaxChars  int `yaml:"summary_max_chars" mapstructure:"summary_max_chars"`   // merged summary cap
}

// HTTPConfig configures URL ingestion.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Format  string `yaml:"format" mapstructure:"format"` // text, json, or html
}

// PatternConfig points at an optional custom pattern file.
type PatternConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // YAML pattern overrides, empty for builtins only
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "", // disabled unless configured
			Model:       "",
			MaxTokens:   1200,
			Temperature: 0.15,
			Timeout:     30,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Analysis: AnalysisConfig{
			ChunkSize:        2500,
			ChunkOverlap:     300,
			MaxLLMChunks:     6,
			ChunkWorkers:     4,
			MaxMergedClauses: 10,
			MaxClauses:       8,
			MaxHeuristic:     10,
			RefineTop:        6,
			SummaryMaxChars:  900,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Redline/0.1 (+https://github.com/pkoval/redline)",
			MaxBodyBytes: 2_000_000,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}
