package model

import "time"

// Config holds the complete divinepl configuration
type Config struct {
	Dev             bool `yaml:"dev" json:"dev"`                           // Development mode unlocks sinful operations
	OverrideSabbath bool `yaml:"override_sabbath" json:"override_sabbath"` // Only honored together with Dev

	Output      OutputConfig      `yaml:"output" json:"output"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Pacing      PacingConfig      `yaml:"pacing" json:"pacing"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// OutputConfig controls console and report rendering
type OutputConfig struct {
	Verbose    bool `yaml:"verbose" json:"verbose"`
	Revelation bool `yaml:"revelation" json:"revelation"` // Revelation mode: deep divine insight
	Color      bool `yaml:"color" json:"color"`
	NoDelay    bool `yaml:"no_delay" json:"no_delay"` // Skip pacing delays (tests, CI)
}

// CacheConfig controls the confession report cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig controls batch confession workers
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// PacingConfig controls the divine timing of staged output
type PacingConfig struct {
	StagesPerSecond float64 `yaml:"stages_per_second" json:"stages_per_second"`
	Burst           int     `yaml:"burst" json:"burst"`
}

// LLMConfig configures the optional inspiration provider.
// Inspirations never affect classification, commandments, or confession.
type LLMConfig struct {
	Provider   string `yaml:"provider" json:"provider"` // openai, anthropic, ollama, or empty (disabled)
	Model      string `yaml:"model" json:"model"`
	APIKey     string `yaml:"-" json:"-"`
	BaseURL    string `yaml:"base_url" json:"base_url"`
	Timeout    int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens  int    `yaml:"max_tokens" json:"max_tokens"`
	HTTPProxy  string `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy" json:"https_proxy"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Color: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Pacing: PacingConfig{
			StagesPerSecond: 3,
			Burst:           1,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 500,
		},
	}
}
