package pipeline

import (
	"fmt"
	"strings"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

const systemPrompt = `You are a meticulous B2B market researcher. You extract facts about one company into a fixed schema used to prefill a marketing onboarding form.

Rules:
1. Only record claims you can verify in the provided content or in sources you can cite. Never invent, estimate, or generalize from the industry.
2. If a field cannot be verified, set its value to null. A null is always better than a guess.
3. Every non-null value must carry the real URL of the page it came from in "source". Do not cite a URL you did not read.
4. Prefer quoting the company's own words verbatim over paraphrasing. Keep quotes short and exact.
5. Score confidence honestly: "high" only when the source states the fact explicitly, "medium" when it is clearly implied, "low" when it is a weak inference. Do not inflate.
6. When website content is provided, treat it as ground truth. It overrides anything you believe from memory.

Return every field in the schema. Fields with no evidence are null or carry a null value.`

// SystemPrompt returns the evidentiary rules for research extraction.
func SystemPrompt() string { return systemPrompt }

// PromptInput is everything the user prompt embeds.
type PromptInput struct {
	WebsiteURL     string
	LinkedInURL    string
	ScrapedContent string
	// SearchFindings holds web search results gathered when no site
	// content was available. Ignored when ScrapedContent is set.
	SearchFindings  string
	SearchCitations []string
}

// SearchOnly reports whether the prompt must fall back to web search.
func (in PromptInput) SearchOnly() bool {
	return strings.TrimSpace(in.ScrapedContent) == ""
}

// UserPrompt builds the per-company instruction. With scraped content the
// model is told to rely on it; without, it is told to research the company
// on the web and cite what it finds.
func UserPrompt(in PromptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research the company at %s.\n", in.WebsiteURL)
	if in.LinkedInURL != "" {
		fmt.Fprintf(&b, "Its LinkedIn company page is %s; use it for size, industry, and headquarters when it is citable.\n", in.LinkedInURL)
	}

	if !in.SearchOnly() {
		b.WriteString("\nThe following content was scraped from the company's website. It is the ground truth for this task. Cite the page URL shown in each source header.\n\n")
		b.WriteString("<website_content>\n")
		b.WriteString(in.ScrapedContent)
		b.WriteString("\n</website_content>\n")
	} else {
		b.WriteString("\nNo content could be retrieved from the website. Use web search to find the company's own pages and reputable third-party sources, and cite the exact URL for every value. If you cannot find a source for a field, set it to null.\n")
		if findings := strings.TrimSpace(in.SearchFindings); findings != "" {
			b.WriteString("\nWeb search findings gathered so far (verify before use):\n\n<search_findings>\n")
			b.WriteString(findings)
			b.WriteString("\n</search_findings>\n")
			if len(in.SearchCitations) > 0 {
				b.WriteString("\nCitable sources:\n")
				for _, c := range in.SearchCitations {
					fmt.Fprintf(&b, "- %s\n", c)
				}
			}
		}
	}

	b.WriteString("\nExtract these fields:\n")
	for _, f := range model.ResearchFields {
		fmt.Fprintf(&b, "- %s: %s\n", f.Key, f.Description)
	}
	return b.String()
}
