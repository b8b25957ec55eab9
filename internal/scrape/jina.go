package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/pkg/jina"
)

// JinaAdapter wraps a Jina Reader client as a Scraper.
type JinaAdapter struct {
	client jina.Client
}

// NewJinaAdapter creates a JinaAdapter from a Jina client.
func NewJinaAdapter(client jina.Client) *JinaAdapter {
	return &JinaAdapter{client: client}
}

// Name implements Scraper.
func (j *JinaAdapter) Name() string { return "jina" }

// Supports implements Scraper.
func (j *JinaAdapter) Supports(_ string) bool { return true }

// Scrape fetches a URL via Jina Reader and rejects challenge pages.
func (j *JinaAdapter) Scrape(ctx context.Context, targetURL string) (*Result, error) {
	var opts []jina.ReadOption
	if deadline, ok := ctx.Deadline(); ok {
		opts = append(opts, jina.WithReadTimeout(time.Until(deadline)))
	}

	resp, err := j.client.Read(ctx, targetURL, opts...)
	if err != nil {
		return nil, err
	}
	if reason := unusableReason(resp); reason != "" {
		return nil, eris.Errorf("jina: unusable response for %s: %s", targetURL, reason)
	}

	pageURL := resp.Data.URL
	if pageURL == "" {
		pageURL = targetURL
	}
	return &Result{
		URL:        pageURL,
		Title:      resp.Data.Title,
		Markdown:   resp.Data.Content,
		StatusCode: resp.Code,
		Source:     "jina",
	}, nil
}

var challengeSignatures = []string{
	"checking your browser",
	"enable javascript",
	"please enable cookies",
	"access denied",
	"403 forbidden",
	"just a moment",
	"attention required",
}

// unusableReason returns why a reader response should not be used, or "".
// Short pages that look like bot challenges are rejected so the chain can
// move on.
func unusableReason(resp *jina.ReadResponse) string {
	if resp == nil {
		return "empty response"
	}
	if resp.Code != 0 && resp.Code != 200 {
		return "upstream status"
	}

	content := strings.TrimSpace(resp.Data.Content)
	if len(content) < 100 {
		return "too short"
	}

	if len(content) < 1000 {
		lower := strings.ToLower(content)
		for _, sig := range challengeSignatures {
			if strings.Contains(lower, sig) {
				return "challenge page"
			}
		}
	}
	return ""
}
