package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/pkg/jina"
	"github.com/ammar944/AI-GOS-sub011/pkg/perplexity"
)

// SearchFindings is web research gathered when the site itself could not
// be read.
type SearchFindings struct {
	Text      string
	Citations []string
	Provider  string
}

// Searcher gathers web findings about a company.
type Searcher interface {
	Search(ctx context.Context, websiteURL string) (*SearchFindings, error)
}

func companyDomain(websiteURL string) string {
	u, err := url.Parse(websiteURL)
	if err != nil || u.Hostname() == "" {
		return websiteURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

const searchSystemPrompt = "You are a research assistant. Answer only with facts you can cite. Include the source URL after each fact. Say \"unknown\" instead of guessing."

// PerplexitySearcher asks a search-grounded chat model for a company
// profile.
type PerplexitySearcher struct {
	client perplexity.Client
	model  string
}

// NewPerplexitySearcher creates a PerplexitySearcher. An empty model uses
// the client default.
func NewPerplexitySearcher(client perplexity.Client, model string) *PerplexitySearcher {
	return &PerplexitySearcher{client: client, model: model}
}

// Search implements Searcher.
func (p *PerplexitySearcher) Search(ctx context.Context, websiteURL string) (*SearchFindings, error) {
	domain := companyDomain(websiteURL)
	temp := 0.0
	resp, err := p.client.ChatCompletion(ctx, perplexity.ChatCompletionRequest{
		Model: p.model,
		Messages: []perplexity.Message{
			{Role: "system", Content: searchSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Profile the company that owns %s: what it sells, who it sells to, industry, headquarters, employee count, pricing, main competitors, and notable customers or testimonials.",
				domain)},
		},
		Temperature: &temp,
	})
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: perplexity search")
	}
	return &SearchFindings{
		Text:      resp.Content(),
		Citations: resp.Citations,
		Provider:  "perplexity",
	}, nil
}

// JinaSearcher runs a web search and keeps the top results.
type JinaSearcher struct {
	client     jina.Client
	maxResults int
}

// NewJinaSearcher creates a JinaSearcher keeping up to maxResults hits.
func NewJinaSearcher(client jina.Client, maxResults int) *JinaSearcher {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &JinaSearcher{client: client, maxResults: maxResults}
}

// maxResultChars caps each search hit's content.
const maxResultChars = 1500

// Search implements Searcher.
func (j *JinaSearcher) Search(ctx context.Context, websiteURL string) (*SearchFindings, error) {
	domain := companyDomain(websiteURL)
	resp, err := j.client.Search(ctx, domain+" company about pricing customers")
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: jina search")
	}

	out := &SearchFindings{Provider: "jina"}
	var b strings.Builder
	for i, r := range resp.Data {
		if i >= j.maxResults {
			break
		}
		text := strings.TrimSpace(r.Content)
		if text == "" {
			text = strings.TrimSpace(r.Description)
		}
		if text == "" {
			continue
		}
		text, _ = truncateRunes(text, maxResultChars)
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "### %s (%s)\n%s", r.Title, r.URL, text)
		out.Citations = append(out.Citations, r.URL)
	}
	out.Text = b.String()
	return out, nil
}
