package curator

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/yuji-sgs/news-summary-agent/pkg/digest"
	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Aggregator merges all configured feeds into a recency-ordered record list
type Aggregator interface {
	FetchAll(ctx context.Context) []domain.FeedRecord
}

// Summarizer produces model-generated summaries for selected items
type Summarizer interface {
	SummarizeAggregate(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error)
	SummarizeBatch(ctx context.Context, items []domain.SelectedItem, useSnippet bool) ([]domain.ArticleSummary, error)
}

// Notifier delivers the rendered digest to a messaging channel
type Notifier interface {
	Post(ctx context.Context, channel, text string) error
}

// digest modes
const (
	ModeAggregate = "aggregate" // one summary over the whole selection
	ModeArticles  = "articles"  // one summary per selected item
)

// Curator runs the curation pipeline: aggregate feeds, score and rank,
// deduplicate, pick the top records, summarize them and render the
// digest. Each run is stateless; nothing persists between runs.
type Curator struct {
	aggregator Aggregator
	summarizer Summarizer
	notifier   Notifier
	scorer     *Scorer

	topK       int
	maxAgeDays int
	mode       string
	useSnippet bool
	channel    string

	now func() time.Time
}

// Config holds construction parameters for Curator
type Config struct {
	Aggregator Aggregator
	Summarizer Summarizer
	Notifier   Notifier // optional, digest is still returned without one
	Scorer     *Scorer

	TopK       int
	MaxAgeDays int
	Mode       string
	UseSnippet bool
	Channel    string
}

// New creates a curator from the provided configuration
func New(cfg Config) *Curator {
	mode := cfg.Mode
	if mode == "" {
		mode = ModeAggregate
	}
	return &Curator{
		aggregator: cfg.Aggregator,
		summarizer: cfg.Summarizer,
		notifier:   cfg.Notifier,
		scorer:     cfg.Scorer,
		topK:       cfg.TopK,
		maxAgeDays: cfg.MaxAgeDays,
		mode:       mode,
		useSnippet: cfg.UseSnippet,
		channel:    cfg.Channel,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run executes one curation batch and returns the rendered digest.
// An empty selection short-circuits to the empty rendering without
// calling the model. Notification failures are logged and swallowed;
// a summarization failure aborts the run with no digest.
func (c *Curator) Run(ctx context.Context) (string, error) {
	records := c.aggregator.FetchAll(ctx)
	picks := c.selectTop(records)
	lgr.Printf("[INFO] selected %d of %d records", len(picks), len(records))

	today := c.now().Format("2006-01-02")
	if len(picks) == 0 {
		text := digest.RenderEmpty(today, c.maxAgeDays)
		c.deliver(ctx, text)
		return text, nil
	}

	items := make([]domain.SelectedItem, len(picks))
	for i, p := range picks {
		items[i] = domain.SelectedItem{Title: p.Title, URL: p.Link}
	}

	var text string
	switch c.mode {
	case ModeArticles:
		summaries, err := c.summarizer.SummarizeBatch(ctx, items, c.useSnippet)
		if err != nil {
			return "", fmt.Errorf("summarize articles: %w", err)
		}
		text = digest.RenderArticles(summaries)
	default:
		summary, err := c.summarizer.SummarizeAggregate(ctx, items)
		if err != nil {
			return "", fmt.Errorf("summarize digest: %w", err)
		}
		text = digest.RenderAggregate(summary, picks)
	}

	c.deliver(ctx, text)
	return text, nil
}

// RunSimple summarizes the newest topN records without scoring or
// deduplication. Compatibility path for the pre-curation behavior.
func (c *Curator) RunSimple(ctx context.Context, topN int) (string, error) {
	records := c.aggregator.FetchAll(ctx)
	if topN > 0 && len(records) > topN {
		records = records[:topN]
	}

	items := make([]domain.SelectedItem, len(records))
	for i, rec := range records {
		items[i] = domain.SelectedItem{Title: rec.Title, URL: rec.Link}
	}

	summary, err := c.summarizer.SummarizeAggregate(ctx, items)
	if err != nil {
		return "", fmt.Errorf("summarize digest: %w", err)
	}

	text := digest.RenderAggregate(summary, nil)
	c.deliver(ctx, text)
	return text, nil
}

// selectTop scores all records, ranks them by (score, published)
// descending, then deduplicates and truncates to topK. Dedup runs on
// the ranked list, so the highest-ranked instance of a duplicate wins.
func (c *Curator) selectTop(records []domain.FeedRecord) []domain.FeedRecord {
	now := c.now()
	for i := range records {
		records[i].Score = c.scorer.Score(&records[i], now)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].PublishedOrEpoch().After(records[j].PublishedOrEpoch())
	})

	records = Dedup(records)
	if c.topK > 0 && len(records) > c.topK {
		records = records[:c.topK]
	}
	return records
}

// deliver posts the digest to the configured channel, swallowing failures
func (c *Curator) deliver(ctx context.Context, text string) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Post(ctx, c.channel, text); err != nil {
		lgr.Printf("[WARN] notification delivery failed: %v", err)
	}
}
