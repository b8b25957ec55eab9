package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Firecrawl  FirecrawlConfig  `yaml:"firecrawl" mapstructure:"firecrawl"`
	Jina       JinaConfig       `yaml:"jina" mapstructure:"jina"`
	Perplexity PerplexityConfig `yaml:"perplexity" mapstructure:"perplexity"`
	Anthropic  AnthropicConfig  `yaml:"anthropic" mapstructure:"anthropic"`
	Gemini     GeminiConfig     `yaml:"gemini" mapstructure:"gemini"`
	LLM        LLMConfig        `yaml:"llm" mapstructure:"llm"`
	Research   ResearchConfig   `yaml:"research" mapstructure:"research"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Auth       AuthConfig       `yaml:"auth" mapstructure:"auth"`
	Monitoring MonitoringConfig `yaml:"monitoring" mapstructure:"monitoring"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// FirecrawlConfig holds Firecrawl API settings. An empty key disables
// Firecrawl scraping.
type FirecrawlConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// JinaConfig holds Jina AI Reader settings (scrape fallback and search).
type JinaConfig struct {
	Key           string `yaml:"key" mapstructure:"key"`
	BaseURL       string `yaml:"base_url" mapstructure:"base_url"`
	SearchBaseURL string `yaml:"search_base_url" mapstructure:"search_base_url"`
}

// PerplexityConfig holds Perplexity API settings (search-only mode).
type PerplexityConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// GeminiConfig holds Google Gemini API settings.
type GeminiConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// LLMConfig selects the structured-output provider and its sampling knobs.
type LLMConfig struct {
	Provider        string  `yaml:"provider" mapstructure:"provider"`
	Temperature     float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxOutputTokens int64   `yaml:"max_output_tokens" mapstructure:"max_output_tokens"`
}

// ResearchConfig configures the prefill pipeline.
type ResearchConfig struct {
	CandidatePaths   []string `yaml:"candidate_paths" mapstructure:"candidate_paths"`
	PageTimeoutSecs  int      `yaml:"page_timeout_secs" mapstructure:"page_timeout_secs"`
	MaxPageChars     int      `yaml:"max_page_chars" mapstructure:"max_page_chars"`
	MaxTotalChars    int      `yaml:"max_total_chars" mapstructure:"max_total_chars"`
	MaxConcurrency   int      `yaml:"max_concurrency" mapstructure:"max_concurrency"`
	PageRetries      int      `yaml:"page_retries" mapstructure:"page_retries"`
	LocalScrape      bool     `yaml:"local_scrape" mapstructure:"local_scrape"`
	SearchFallback   bool     `yaml:"search_fallback" mapstructure:"search_fallback"`
	SearchTimeoutSec int      `yaml:"search_timeout_secs" mapstructure:"search_timeout_secs"`
}

// PageTimeout returns the per-page fetch timeout.
func (c ResearchConfig) PageTimeout() time.Duration {
	return time.Duration(c.PageTimeoutSecs) * time.Second
}

// SearchTimeout returns the search-fallback timeout.
func (c ResearchConfig) SearchTimeout() time.Duration {
	return time.Duration(c.SearchTimeoutSec) * time.Second
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port              int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins    []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	ResearchRateLimit float64  `yaml:"research_rate_limit" mapstructure:"research_rate_limit"`
	ResearchBurst     int      `yaml:"research_burst" mapstructure:"research_burst"`
}

// AuthConfig configures bearer-token verification.
type AuthConfig struct {
	JWTSecret      string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer         string `yaml:"issuer" mapstructure:"issuer"`
	Audience       string `yaml:"audience" mapstructure:"audience"`
	TokenCacheSize int    `yaml:"token_cache_size" mapstructure:"token_cache_size"`
}

// MonitoringConfig configures the background health checker and its alert
// thresholds. Thresholds are evaluated over the window since the previous
// check.
type MonitoringConfig struct {
	WebhookURL           string  `yaml:"webhook_url" mapstructure:"webhook_url"`
	CheckIntervalSecs    int     `yaml:"check_interval_secs" mapstructure:"check_interval_secs"`
	FailureRateThreshold float64 `yaml:"failure_rate_threshold" mapstructure:"failure_rate_threshold"`
	CostThresholdUSD     float64 `yaml:"cost_threshold_usd" mapstructure:"cost_threshold_usd"`
	MinSessions          int     `yaml:"min_sessions" mapstructure:"min_sessions"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultCandidatePaths are the site paths fetched for company research, in
// priority order.
var DefaultCandidatePaths = []string{
	"",
	"/about",
	"/about-us",
	"/pricing",
	"/features",
	"/products",
	"/customers",
	"/case-studies",
}

// envOnlyKeys are settings with no default, typically secrets supplied
// through AIGOS_* variables.
var envOnlyKeys = []string{
	"store.database_url",
	"firecrawl.key",
	"jina.key",
	"perplexity.key",
	"anthropic.key",
	"anthropic.base_url",
	"gemini.key",
	"auth.jwt_secret",
	"auth.issuer",
	"auth.audience",
	"monitoring.webhook_url",
}

// Load reads configuration from file and environment. A .env file in the
// working directory, when present, is loaded into the process environment
// first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("AIGOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.max_conns", 10)
	v.SetDefault("store.min_conns", 2)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.research_rate_limit", 0.2)
	v.SetDefault("server.research_burst", 3)
	v.SetDefault("auth.token_cache_size", 1024)
	v.SetDefault("monitoring.check_interval_secs", 300)
	v.SetDefault("monitoring.failure_rate_threshold", 0.5)
	v.SetDefault("monitoring.cost_threshold_usd", 25.0)
	v.SetDefault("monitoring.min_sessions", 5)
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev/v1")
	v.SetDefault("jina.base_url", "https://r.jina.ai")
	v.SetDefault("jina.search_base_url", "https://s.jina.ai")
	v.SetDefault("perplexity.base_url", "https://api.perplexity.ai")
	v.SetDefault("perplexity.model", "sonar-pro")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_output_tokens", 4096)
	v.SetDefault("research.candidate_paths", DefaultCandidatePaths)
	v.SetDefault("research.page_timeout_secs", 15)
	v.SetDefault("research.max_page_chars", 3000)
	v.SetDefault("research.max_total_chars", 15000)
	v.SetDefault("research.max_concurrency", 8)
	v.SetDefault("research.page_retries", 1)
	v.SetDefault("research.local_scrape", false)
	v.SetDefault("research.search_fallback", true)
	v.SetDefault("research.search_timeout_secs", 30)

	// Keys without a default are only seen by Unmarshal once bound.
	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, eris.Wrapf(err, "config: bind env %s", key)
		}
	}

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings required by the given command mode
// ("serve", "research", "migrate") and reports every problem at once.
func (c *Config) Validate(mode string) error {
	var problems []string

	switch mode {
	case "serve":
		if c.Server.Port <= 0 {
			problems = append(problems, "server.port must be > 0")
		}
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required")
		}
		if c.Auth.JWTSecret == "" {
			problems = append(problems, "auth.jwt_secret is required")
		}
		problems = append(problems, c.validateLLM()...)
		problems = append(problems, c.validateResearch()...)
	case "research":
		problems = append(problems, c.validateLLM()...)
		problems = append(problems, c.validateResearch()...)
	case "migrate":
		if c.Store.DatabaseURL == "" {
			problems = append(problems, "store.database_url is required")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid for %s: %s", mode, strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) validateLLM() []string {
	var problems []string
	switch c.LLM.Provider {
	case "anthropic":
		if c.Anthropic.Key == "" {
			problems = append(problems, "anthropic.key is required")
		}
	case "gemini":
		if c.Gemini.Key == "" {
			problems = append(problems, "gemini.key is required")
		}
	default:
		problems = append(problems, "llm.provider must be anthropic or gemini")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 1 {
		problems = append(problems, "llm.temperature must be between 0 and 1")
	}
	if c.LLM.MaxOutputTokens <= 0 {
		problems = append(problems, "llm.max_output_tokens must be > 0")
	}
	return problems
}

func (c *Config) validateResearch() []string {
	var problems []string
	r := c.Research
	if len(r.CandidatePaths) == 0 {
		problems = append(problems, "research.candidate_paths must not be empty")
	}
	if r.MaxPageChars <= 0 || r.MaxTotalChars <= 0 {
		problems = append(problems, "research character budgets must be > 0")
	}
	if r.MaxPageChars > r.MaxTotalChars {
		problems = append(problems, "research.max_page_chars must not exceed research.max_total_chars")
	}
	if r.MaxConcurrency < 1 || r.MaxConcurrency > 32 {
		problems = append(problems, "research.max_concurrency must be between 1 and 32")
	}
	if r.PageTimeoutSecs <= 0 {
		problems = append(problems, "research.page_timeout_secs must be > 0")
	}
	return problems
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
