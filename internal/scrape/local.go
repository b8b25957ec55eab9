package scrape

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"golang.org/x/net/html/charset"

	"github.com/ammar944/AI-GOS-sub011/internal/resilience"
)

const maxLocalBody = 2 << 20

// LocalScraper fetches HTML directly and converts it to markdown. It needs no
// credentials; blocked or JavaScript-only pages fail so the chain can fall
// through to a rendering backend.
type LocalScraper struct {
	client    *http.Client
	converter *md.Converter
}

// NewLocalScraper creates a LocalScraper with sensible defaults.
func NewLocalScraper() *LocalScraper {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	return &LocalScraper{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext:         (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		converter: conv,
	}
}

// Name implements Scraper.
func (l *LocalScraper) Name() string { return "local_http" }

// Supports implements Scraper.
func (l *LocalScraper) Supports(_ string) bool { return true }

// Scrape fetches a URL, detects blocks, and converts the main content to
// markdown.
func (l *LocalScraper) Scrape(ctx context.Context, targetURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: create request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; AIGOSBot/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "local_http: fetch")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxLocalBody))
	if err != nil {
		return nil, eris.Wrap(err, "local_http: read body")
	}

	if blocked, blockType := DetectBlock(resp, body); blocked {
		return nil, eris.Errorf("local_http: blocked (%s)", blockType)
	}
	if resp.StatusCode >= 400 {
		return nil, resilience.MarkStatus(eris.Errorf("local_http: status %d", resp.StatusCode), resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return nil, eris.Errorf("local_http: unsupported content type %q", ct)
	}

	title, markdown, err := l.convert(body, ct)
	if err != nil {
		return nil, err
	}
	if len(markdown) < 50 {
		return nil, eris.New("local_http: empty page")
	}

	return &Result{
		URL:        resp.Request.URL.String(),
		Title:      title,
		Markdown:   markdown,
		StatusCode: resp.StatusCode,
		Source:     "local_http",
	}, nil
}

var excessiveLinesRe = regexp.MustCompile(`\n{3,}`)

// convert decodes body to UTF-8, strips page chrome, and renders the main
// content region as markdown.
func (l *LocalScraper) convert(body []byte, contentType string) (string, string, error) {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
		body = decoded
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", "", eris.Wrap(err, "local_http: parse html")
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	}

	doc.Find("script,noscript,style,svg,iframe,nav,footer,header,form").Remove()

	content := doc.Find("main").First()
	if content.Length() == 0 {
		content = doc.Find("article").First()
	}
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	markdown := l.converter.Convert(content)
	markdown = excessiveLinesRe.ReplaceAllString(strings.TrimSpace(markdown), "\n\n")
	return title, markdown, nil
}
