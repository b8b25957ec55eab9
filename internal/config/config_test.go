package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, int64(4096), cfg.LLM.MaxOutputTokens)
	assert.Equal(t, DefaultCandidatePaths, cfg.Research.CandidatePaths)
	assert.Equal(t, 15*time.Second, cfg.Research.PageTimeout())
	assert.Equal(t, 3000, cfg.Research.MaxPageChars)
	assert.Equal(t, 15000, cfg.Research.MaxTotalChars)
	assert.Equal(t, 8, cfg.Research.MaxConcurrency)
	assert.True(t, cfg.Research.SearchFallback)
	assert.Equal(t, "https://r.jina.ai", cfg.Jina.BaseURL)
	assert.Equal(t, "https://api.firecrawl.dev/v1", cfg.Firecrawl.BaseURL)
	assert.Equal(t, "sonar-pro", cfg.Perplexity.Model)
	assert.Equal(t, 1024, cfg.Auth.TokenCacheSize)
	assert.Equal(t, 300, cfg.Monitoring.CheckIntervalSecs)
	assert.InDelta(t, 0.5, cfg.Monitoring.FailureRateThreshold, 0.001)
	assert.Equal(t, 5, cfg.Monitoring.MinSessions)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
store:
  driver: sqlite
log:
  level: debug
  format: console
server:
  port: 9090
research:
  max_total_chars: 9000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 9000, cfg.Research.MaxTotalChars)
	// Defaults still apply for unset values
	assert.Equal(t, 3000, cfg.Research.MaxPageChars)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("AIGOS_STORE_DRIVER", "postgres")
	t.Setenv("AIGOS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AIGOS_FIRECRAWL_KEY=fc-from-dotenv\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("AIGOS_FIRECRAWL_KEY") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fc-from-dotenv", cfg.Firecrawl.Key)
}

func TestLoadSecretsFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("AIGOS_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AIGOS_ANTHROPIC_KEY", "sk-ant")
	t.Setenv("AIGOS_GEMINI_KEY", "gm-key")
	t.Setenv("AIGOS_JINA_KEY", "jina-key")
	t.Setenv("AIGOS_PERPLEXITY_KEY", "pplx-key")
	t.Setenv("AIGOS_STORE_DATABASE_URL", "postgres://localhost/aigos")
	t.Setenv("AIGOS_MONITORING_WEBHOOK_URL", "https://hooks.example.com/x")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "sk-ant", cfg.Anthropic.Key)
	assert.Equal(t, "gm-key", cfg.Gemini.Key)
	assert.Equal(t, "jina-key", cfg.Jina.Key)
	assert.Equal(t, "pplx-key", cfg.Perplexity.Key)
	assert.Equal(t, "postgres://localhost/aigos", cfg.Store.DatabaseURL)
	assert.Equal(t, "https://hooks.example.com/x", cfg.Monitoring.WebhookURL)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Store.DatabaseURL = "postgres://localhost/test"
	cfg.Auth.JWTSecret = "secret"
	cfg.LLM.Provider = "anthropic"
	cfg.LLM.Temperature = 0.3
	cfg.LLM.MaxOutputTokens = 4096
	cfg.Anthropic.Key = "sk-ant-key"
	cfg.Research.CandidatePaths = DefaultCandidatePaths
	cfg.Research.MaxPageChars = 3000
	cfg.Research.MaxTotalChars = 15000
	cfg.Research.MaxConcurrency = 8
	cfg.Research.PageTimeoutSecs = 15
	return cfg
}

func TestValidateServe_AllPresent(t *testing.T) {
	assert.NoError(t, validDefaults().Validate("serve"))
}

func TestValidateServe_MissingFields(t *testing.T) {
	cfg := validDefaults()
	cfg.Store.DatabaseURL = ""
	cfg.Auth.JWTSecret = ""
	cfg.Anthropic.Key = ""

	err := cfg.Validate("serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.database_url is required")
	assert.Contains(t, err.Error(), "auth.jwt_secret is required")
	assert.Contains(t, err.Error(), "anthropic.key is required")
}

func TestValidateResearch_GeminiProvider(t *testing.T) {
	cfg := validDefaults()
	cfg.LLM.Provider = "gemini"

	err := cfg.Validate("research")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini.key is required")

	cfg.Gemini.Key = "g-key"
	assert.NoError(t, cfg.Validate("research"))
}

func TestValidateResearch_Budgets(t *testing.T) {
	cfg := validDefaults()
	cfg.Research.MaxPageChars = 20000

	err := cfg.Validate("research")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_page_chars must not exceed")

	cfg = validDefaults()
	cfg.Research.MaxConcurrency = 0
	err = cfg.Validate("research")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_concurrency must be between 1 and 32")
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be > 0")
}

func TestValidateMigrate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate("migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store.database_url is required")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
