package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Feeds []string `yaml:"feeds" json:"feeds" jsonschema:"required,description=Feed URLs to aggregate"`

	Curation CurationConfig `yaml:"curation" json:"curation" jsonschema:"description=Scoring and selection settings"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for digest summarization"`

	Fetch struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request network timeout"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=news-agent/1.0,description=User agent for feed and article requests"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Network fetch configuration"`

	Slack SlackConfig `yaml:"slack" json:"slack" jsonschema:"description=Slack delivery configuration"`
}

// CurationConfig holds scoring and selection settings
type CurationConfig struct {
	TopK              int      `yaml:"top_k" json:"top_k" jsonschema:"default=5,description=Number of items selected for the digest"`
	PerFeed           int      `yaml:"per_feed" json:"per_feed" jsonschema:"default=10,description=Maximum entries fetched per feed"`
	Limit             int      `yaml:"limit" json:"limit" jsonschema:"default=200,description=Cap on aggregated records before selection"`
	MaxAgeDays        int      `yaml:"max_age_days" json:"max_age_days" jsonschema:"default=3,description=Drop records older than this many days (0 disables)"`
	PrimaryKeywords   []string `yaml:"primary_keywords" json:"primary_keywords" jsonschema:"description=Keywords worth 3.0 points each"`
	SecondaryKeywords []string `yaml:"secondary_keywords" json:"secondary_keywords" jsonschema:"description=Keywords worth 1.5 points each"`
	Mode              string   `yaml:"mode" json:"mode" jsonschema:"default=aggregate,enum=aggregate,enum=articles,description=Digest mode"`
	UseSnippet        bool     `yaml:"use_snippet" json:"use_snippet" jsonschema:"default=false,description=Fetch a short article excerpt for per-article summaries"`
}

// LLMConfig holds LLM configuration for digest summarization
type LLMConfig struct {
	Endpoint      string `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (optional)"`
	APIKey        string `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model         string `yaml:"model" json:"model" jsonschema:"default=gpt-5-nano,description=Primary model name"`
	FallbackModel string `yaml:"fallback_model" json:"fallback_model" jsonschema:"description=Model retried once when the primary call fails"`
}

// SlackConfig holds Slack delivery settings
type SlackConfig struct {
	Token   string `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
	Channel string `yaml:"channel" json:"channel" jsonschema:"default=#general,description=Target channel"`
}

// Load reads configuration from a YAML file, expanding environment
// variables before parsing so secrets can stay out of the file.
// Defaults are applied before unmarshalling, so only keys present in
// the file override them; an explicit `max_age_days: 0` stays 0 and
// disables the age filter.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := defaultConfig()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// defaultConfig returns a config pre-populated with defaults; yaml
// unmarshalling overwrites only the fields the file sets
func defaultConfig() Config {
	var cfg Config
	cfg.Curation.TopK = 5
	cfg.Curation.PerFeed = 10
	cfg.Curation.Limit = 200
	cfg.Curation.MaxAgeDays = 3
	cfg.Curation.Mode = "aggregate"
	cfg.LLM.Model = "gpt-5-nano"
	cfg.Fetch.Timeout = 10 * time.Second
	cfg.Fetch.UserAgent = "news-agent/1.0"
	cfg.Slack.Channel = "#general"
	return cfg
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if len(cfg.Feeds) == 0 {
		return fmt.Errorf("feeds is required")
	}

	if cfg.Curation.Mode != "aggregate" && cfg.Curation.Mode != "articles" {
		return fmt.Errorf("curation.mode must be aggregate or articles")
	}
	if cfg.Curation.TopK < 1 {
		return fmt.Errorf("curation.top_k must be at least 1")
	}
	if cfg.Curation.MaxAgeDays < 0 {
		return fmt.Errorf("curation.max_age_days must be non-negative")
	}

	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch.timeout must be at least 1 second")
	}

	return nil
}
