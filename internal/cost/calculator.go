// Package cost prices model completions from their token usage.
package cost

import "github.com/ammar944/AI-GOS-sub011/internal/model"

// Rates holds per-model token pricing.
type Rates struct {
	Models map[string]ModelRate `yaml:"models" mapstructure:"models"`
}

// ModelRate holds per-model token pricing (USD per million tokens).
type ModelRate struct {
	Input         float64 `yaml:"input" mapstructure:"input"`
	Output        float64 `yaml:"output" mapstructure:"output"`
	CacheWriteMul float64 `yaml:"cache_write_mul" mapstructure:"cache_write_mul"`
	CacheReadMul  float64 `yaml:"cache_read_mul" mapstructure:"cache_read_mul"`
}

// Calculator computes costs for model usage.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Completion returns the USD cost of u on modelName, or 0 for models
// without a rate.
func (c *Calculator) Completion(modelName string, u model.TokenUsage) float64 {
	rate, ok := c.rates.Models[modelName]
	if !ok {
		return 0
	}

	inCost := (float64(u.InputTokens) / 1e6) * rate.Input
	outCost := (float64(u.OutputTokens) / 1e6) * rate.Output
	cwCost := (float64(u.CacheCreationTokens) / 1e6) * rate.Input * rate.CacheWriteMul
	crCost := (float64(u.CacheReadTokens) / 1e6) * rate.Input * rate.CacheReadMul

	return inCost + outCost + cwCost + crCost
}

// Known reports whether modelName has a rate.
func (c *Calculator) Known(modelName string) bool {
	_, ok := c.rates.Models[modelName]
	return ok
}

// DefaultRates returns list pricing for the supported Gemini models.
// Anthropic pricing lives with its client.
func DefaultRates() Rates {
	return Rates{
		Models: map[string]ModelRate{
			"gemini-2.5-flash": {
				Input: 0.30, Output: 2.50, CacheReadMul: 0.25,
			},
			"gemini-2.5-flash-lite": {
				Input: 0.10, Output: 0.40, CacheReadMul: 0.25,
			},
			"gemini-2.5-pro": {
				Input: 1.25, Output: 10.00, CacheReadMul: 0.25,
			},
		},
	}
}
