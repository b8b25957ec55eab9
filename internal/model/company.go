package model

// TokenUsage tracks token consumption of a model invocation.
type TokenUsage struct {
	InputTokens         int     `json:"input_tokens"`
	OutputTokens        int     `json:"output_tokens"`
	CacheCreationTokens int     `json:"cache_creation_tokens,omitempty"`
	CacheReadTokens     int     `json:"cache_read_tokens,omitempty"`
	Cost                float64 `json:"cost,omitempty"`
}

// Add accumulates other into u.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.CacheCreationTokens += other.CacheCreationTokens
	u.CacheReadTokens += other.CacheReadTokens
	u.Cost += other.Cost
}

// ResearchRequest is the input to one research invocation.
type ResearchRequest struct {
	WebsiteURL  string `json:"websiteUrl"`
	LinkedInURL string `json:"linkedinUrl,omitempty"`
}
