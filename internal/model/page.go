package model

// ScrapeResult is the outcome of fetching one URL.
type ScrapeResult struct {
	Success  bool   `json:"success"`
	Markdown string `json:"markdown,omitempty"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchScrapeResult aggregates per-URL results for one batch.
type BatchScrapeResult struct {
	Results      map[string]ScrapeResult `json:"results"`
	SuccessCount int                     `json:"success_count"`
	FailureCount int                     `json:"failure_count"`
}

// PageContent is the budgeted slice of a page retained for prompting.
type PageContent struct {
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Chars     int    `json:"chars"`
	Truncated bool   `json:"truncated"`
}
