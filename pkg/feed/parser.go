package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

// Parser fetches and parses a single RSS/Atom feed, normalizing each
// entry into a domain.FeedRecord.
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
}

// NewParser creates a feed parser with a shared HTTP client.
// The client is constructed once and reused for every feed.
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Parse fetches the feed at feedURL and returns up to maxItems normalized
// records. A missing entry title becomes the empty string, a missing link
// stays empty, and the published time falls back to the updated time.
// The record source is the feed URL's host.
func (p *Parser) Parse(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	source := ""
	if u, uerr := url.Parse(feedURL); uerr == nil {
		source = u.Host
	}

	items := parsed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	records := make([]domain.FeedRecord, 0, len(items))
	for _, item := range items {
		rec := domain.FeedRecord{
			Title:   item.Title,
			Link:    item.Link,
			Summary: p.plainText(item.Description),
			Source:  source,
		}

		// published time, updated as fallback, absent otherwise
		if item.PublishedParsed != nil {
			t := item.PublishedParsed.UTC()
			rec.Published = &t
		} else if item.UpdatedParsed != nil {
			t := item.UpdatedParsed.UTC()
			rec.Published = &t
		}

		records = append(records, rec)
	}

	return records, nil
}

// plainText strips HTML markup from a feed-entry summary so keyword
// scoring and prompting operate on visible text only.
func (p *Parser) plainText(s string) string {
	return strings.TrimSpace(p.sanitizer.Sanitize(s))
}

// fetch retrieves feed content from a URL
func (p *Parser) fetch(ctx context.Context, feedURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	// some feeds reject clients that don't look like readers
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
