package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
	"github.com/yuji-sgs/news-summary-agent/pkg/feed"
	"github.com/yuji-sgs/news-summary-agent/pkg/feed/mocks"
)

// noRetry runs the operation once, keeping tests free of backoff delays
func noRetry(_ context.Context, operation func() error) error { return operation() }

func tp(t time.Time) *time.Time { return &t }

func TestAggregator_FetchAll(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mockFetcher := &mocks.FetcherMock{
		ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
			switch feedURL {
			case "https://feed1.example.com/rss":
				return []domain.FeedRecord{
					{Title: "old", Published: tp(now.Add(-48 * time.Hour)), Source: "feed1.example.com"},
					{Title: "fresh", Published: tp(now.Add(-1 * time.Hour)), Source: "feed1.example.com"},
				}, nil
			case "https://feed2.example.com/rss":
				return []domain.FeedRecord{
					{Title: "middle", Published: tp(now.Add(-24 * time.Hour)), Source: "feed2.example.com"},
				}, nil
			}
			return nil, errors.New("unexpected feed URL")
		},
	}

	agg := feed.NewAggregator(feed.AggregatorConfig{
		Fetcher:         mockFetcher,
		Feeds:           []string{"https://feed1.example.com/rss", "https://feed2.example.com/rss"},
		MaxItemsPerFeed: 10,
		Limit:           100,
		MaxAgeDays:      7,
		RetryFunc:       noRetry,
		Now:             func() time.Time { return now },
	})

	records := agg.FetchAll(context.Background())
	require.Len(t, records, 3)

	// newest first
	assert.Equal(t, "fresh", records[0].Title)
	assert.Equal(t, "middle", records[1].Title)
	assert.Equal(t, "old", records[2].Title)

	assert.Len(t, mockFetcher.ParseCalls(), 2)
	assert.Equal(t, 10, mockFetcher.ParseCalls()[0].MaxItems)
}

func TestAggregator_FetchAllFeedFailure(t *testing.T) {
	now := time.Now().UTC()

	mockFetcher := &mocks.FetcherMock{
		ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
			if feedURL == "https://broken.example.com/rss" {
				return nil, errors.New("connection refused")
			}
			return []domain.FeedRecord{{Title: "survivor", Published: tp(now)}}, nil
		},
	}

	agg := feed.NewAggregator(feed.AggregatorConfig{
		Fetcher:    mockFetcher,
		Feeds:      []string{"https://broken.example.com/rss", "https://ok.example.com/rss"},
		Limit:      10,
		MaxAgeDays: 7,
		RetryFunc:  noRetry,
	})

	// failing feed contributes zero records, never aborts the run
	records := agg.FetchAll(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "survivor", records[0].Title)
}

func TestAggregator_FetchAllAgeFilter(t *testing.T) {
	now := time.Now().UTC()

	t.Run("undated records dropped when age filter active", func(t *testing.T) {
		mockFetcher := &mocks.FetcherMock{
			ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
				return []domain.FeedRecord{
					{Title: "undated one"},
					{Title: "undated two"},
				}, nil
			},
		}

		agg := feed.NewAggregator(feed.AggregatorConfig{
			Fetcher:    mockFetcher,
			Feeds:      []string{"https://feed.example.com/rss"},
			Limit:      10,
			MaxAgeDays: 3,
			RetryFunc:  noRetry,
		})

		assert.Empty(t, agg.FetchAll(context.Background()))
	})

	t.Run("stale records dropped", func(t *testing.T) {
		mockFetcher := &mocks.FetcherMock{
			ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
				return []domain.FeedRecord{
					{Title: "stale", Published: tp(now.Add(-100 * 24 * time.Hour))},
					{Title: "fresh", Published: tp(now.Add(-time.Hour))},
				}, nil
			},
		}

		agg := feed.NewAggregator(feed.AggregatorConfig{
			Fetcher:    mockFetcher,
			Feeds:      []string{"https://feed.example.com/rss"},
			Limit:      10,
			MaxAgeDays: 3,
			RetryFunc:  noRetry,
		})

		records := agg.FetchAll(context.Background())
		require.Len(t, records, 1)
		assert.Equal(t, "fresh", records[0].Title)
	})

	t.Run("undated records kept and sorted oldest when filter inactive", func(t *testing.T) {
		mockFetcher := &mocks.FetcherMock{
			ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
				return []domain.FeedRecord{
					{Title: "undated"},
					{Title: "dated", Published: tp(now.Add(-time.Hour))},
				}, nil
			},
		}

		agg := feed.NewAggregator(feed.AggregatorConfig{
			Fetcher:   mockFetcher,
			Feeds:     []string{"https://feed.example.com/rss"},
			Limit:     10,
			RetryFunc: noRetry,
		})

		records := agg.FetchAll(context.Background())
		require.Len(t, records, 2)
		assert.Equal(t, "dated", records[0].Title)
		assert.Equal(t, "undated", records[1].Title)
	})
}

func TestAggregator_FetchAllLimit(t *testing.T) {
	now := time.Now().UTC()

	mockFetcher := &mocks.FetcherMock{
		ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
			records := make([]domain.FeedRecord, 5)
			for i := range records {
				records[i] = domain.FeedRecord{
					Title:     "item",
					Published: tp(now.Add(-time.Duration(i) * time.Hour)),
				}
			}
			return records, nil
		},
	}

	agg := feed.NewAggregator(feed.AggregatorConfig{
		Fetcher:    mockFetcher,
		Feeds:      []string{"https://feed.example.com/rss"},
		Limit:      2,
		MaxAgeDays: 7,
		RetryFunc:  noRetry,
	})

	assert.Len(t, agg.FetchAll(context.Background()), 2)
}

func TestAggregator_FetchAllRetries(t *testing.T) {
	attempts := 0
	mockFetcher := &mocks.FetcherMock{
		ParseFunc: func(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedRecord, error) {
			attempts++
			if attempts < 2 {
				return nil, errors.New("transient")
			}
			return []domain.FeedRecord{{Title: "eventually", Published: tp(time.Now().UTC())}}, nil
		},
	}

	retries := 0
	agg := feed.NewAggregator(feed.AggregatorConfig{
		Fetcher:    mockFetcher,
		Feeds:      []string{"https://flaky.example.com/rss"},
		Limit:      10,
		MaxAgeDays: 7,
		RetryFunc: func(ctx context.Context, operation func() error) error {
			for {
				retries++
				if err := operation(); err == nil || retries >= 3 {
					return err
				}
			}
		},
	})

	records := agg.FetchAll(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, 2, attempts)
}
