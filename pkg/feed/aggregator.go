package feed

import (
	"context"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves and normalizes a single feed.
type Fetcher interface {
	Parse(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error)
}

// Aggregator merges records from multiple feeds into one recency-ordered
// list. A failing feed contributes zero records and never aborts the run.
type Aggregator struct {
	fetcher         Fetcher
	feeds           []string
	maxItemsPerFeed int
	limit           int
	maxAgeDays      int

	retryFunc func(ctx context.Context, operation func() error) error
	now       func() time.Time
}

// AggregatorConfig holds construction parameters for Aggregator
type AggregatorConfig struct {
	Fetcher         Fetcher
	Feeds           []string
	MaxItemsPerFeed int
	Limit           int
	MaxAgeDays      int

	// RetryFunc wraps each feed fetch; defaults to exponential backoff,
	// three attempts, delays bounded to [1s, 10s]
	RetryFunc func(ctx context.Context, operation func() error) error

	// Now supplies the current time for the age cutoff; defaults to
	// time.Now in UTC
	Now func() time.Time
}

// NewAggregator creates an aggregator over the configured feed URLs
func NewAggregator(cfg AggregatorConfig) *Aggregator {
	retryFunc := cfg.RetryFunc
	if retryFunc == nil {
		retryFunc = func(ctx context.Context, operation func() error) error {
			retrier := repeater.NewBackoff(3, time.Second, repeater.WithMaxDelay(10*time.Second))
			return retrier.Do(ctx, operation)
		}
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Aggregator{
		fetcher:         cfg.Fetcher,
		feeds:           cfg.Feeds,
		maxItemsPerFeed: cfg.MaxItemsPerFeed,
		limit:           cfg.Limit,
		maxAgeDays:      cfg.MaxAgeDays,
		retryFunc:       retryFunc,
		now:             now,
	}
}

// FetchAll fetches every configured feed sequentially, retrying transient
// failures with backoff, then filters by age, sorts newest first and
// truncates to the configured limit.
//
// When an age filter is active, records without a published time are
// dropped: an undated record cannot be proven fresh. The sort step is
// more permissive and ranks undated records as oldest without dropping
// them. The asymmetry is deliberate.
func (a *Aggregator) FetchAll(ctx context.Context) []domain.FeedRecord {
	var all []domain.FeedRecord

	for _, feedURL := range a.feeds {
		var records []domain.FeedRecord
		err := a.retryFunc(ctx, func() error {
			var ferr error
			records, ferr = a.fetcher.Parse(ctx, feedURL, a.maxItemsPerFeed)
			return ferr
		})
		if err != nil {
			lgr.Printf("[WARN] feed fetch failed for %s: %v", feedURL, err)
			continue
		}
		lgr.Printf("[INFO] fetched %d items from %s", len(records), feedURL)
		all = append(all, records...)
	}

	if a.maxAgeDays > 0 {
		cutoff := a.now().Add(-time.Duration(a.maxAgeDays) * 24 * time.Hour)
		fresh := all[:0]
		for _, rec := range all {
			if rec.Published != nil && !rec.Published.Before(cutoff) {
				fresh = append(fresh, rec)
			}
		}
		all = fresh
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedOrEpoch().After(all[j].PublishedOrEpoch())
	})

	if a.limit > 0 && len(all) > a.limit {
		all = all[:a.limit]
	}
	return all
}
