package curator_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuji-sgs/news-summary-agent/pkg/curator"
	"github.com/yuji-sgs/news-summary-agent/pkg/curator/mocks"
	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

func tp(t time.Time) *time.Time { return &t }

func TestCurator_RunEmptySelection(t *testing.T) {
	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord { return nil },
	}
	mockSummarizer := &mocks.SummarizerMock{}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       5,
		MaxAgeDays: 3,
	})

	text, err := cur.Run(context.Background())
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, fmt.Sprintf("📅 %s\n直近3日以内で条件に合うニュースは見つかりませんでした。", today), text)

	// the model is never called on an empty selection
	assert.Empty(t, mockSummarizer.SummarizeAggregateCalls())
	assert.Empty(t, mockSummarizer.SummarizeBatchCalls())
}

func TestCurator_RunDedupAfterRanking(t *testing.T) {
	now := time.Now().UTC()

	// two records with identical normalized titles; the second carries
	// the agent bonus and must be the surviving duplicate
	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{
				{Title: "Big Agent News!", Summary: "", Published: tp(now.Add(-90 * time.Hour)), Link: "https://a.example.com"},
				{Title: "big agent news", Summary: "ai agent systems", Published: tp(now.Add(-time.Hour)), Link: "https://b.example.com"},
			}
		},
	}

	var got []domain.SelectedItem
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeAggregateFunc: func(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
			got = items
			return domain.AggregateSummary{
				Date:       now.Format("2006-01-02"),
				Highlights: []string{"one highlight"},
			}, nil
		},
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       5,
		MaxAgeDays: 7,
	})

	_, err := cur.Run(context.Background())
	require.NoError(t, err)

	// dedup ran on the ranked list: the fresher, higher-scoring copy won
	require.Len(t, got, 1)
	assert.Equal(t, "https://b.example.com", got[0].URL)
}

func TestCurator_RunSelectionOrdering(t *testing.T) {
	now := time.Now().UTC()

	// scores land as [agent+fresh=3, fresh=2, fresh=2, stale=0];
	// equal scores keep stable order, newest first
	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{
				{Title: "slow week roundup", Published: tp(now.Add(-200 * time.Hour))},
				{Title: "second fresh story", Published: tp(now.Add(-2 * time.Hour))},
				{Title: "first fresh story", Published: tp(now.Add(-1 * time.Hour))},
				{Title: "agent breakthrough", Published: tp(now.Add(-3 * time.Hour))},
			}
		},
	}

	var got []domain.SelectedItem
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeAggregateFunc: func(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
			got = items
			return domain.AggregateSummary{Date: "2024-06-01"}, nil
		},
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       10,
	})

	_, err := cur.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, "agent breakthrough", got[0].Title)
	assert.Equal(t, "first fresh story", got[1].Title)
	assert.Equal(t, "second fresh story", got[2].Title)
	assert.Equal(t, "slow week roundup", got[3].Title)
}

func TestCurator_RunArticlesMode(t *testing.T) {
	now := time.Now().UTC()

	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{
				{Title: "story", Published: tp(now), Link: "https://example.com/s"},
			}
		},
	}
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeBatchFunc: func(ctx context.Context, items []domain.SelectedItem, useSnippet bool) ([]domain.ArticleSummary, error) {
			assert.True(t, useSnippet)
			return []domain.ArticleSummary{
				{Title: "story", URL: "https://example.com/s", Bullets: []string{"a", "b", "c"}},
			}, nil
		},
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       5,
		Mode:       curator.ModeArticles,
		UseSnippet: true,
	})

	text, err := cur.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "📰 story")
	assert.Contains(t, text, "・a")
	assert.Empty(t, mockSummarizer.SummarizeAggregateCalls())
}

func TestCurator_RunSummarizerFailureIsFatal(t *testing.T) {
	now := time.Now().UTC()

	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{{Title: "story", Published: tp(now)}}
		},
	}
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeAggregateFunc: func(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
			return domain.AggregateSummary{}, errors.New("both models down")
		},
	}
	mockNotifier := &mocks.NotifierMock{
		PostFunc: func(ctx context.Context, channel, text string) error { return nil },
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Notifier:   mockNotifier,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       5,
	})

	_, err := cur.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize digest")

	// nothing was delivered for a failed run
	assert.Empty(t, mockNotifier.PostCalls())
}

func TestCurator_RunNotificationFailureSwallowed(t *testing.T) {
	now := time.Now().UTC()

	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{{Title: "story", Published: tp(now)}}
		},
	}
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeAggregateFunc: func(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
			return domain.AggregateSummary{Date: "2024-06-01", Highlights: []string{"h"}}, nil
		},
	}
	mockNotifier := &mocks.NotifierMock{
		PostFunc: func(ctx context.Context, channel, text string) error {
			return errors.New("slack is down")
		},
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Notifier:   mockNotifier,
		Scorer:     curator.NewScorer(nil, nil),
		TopK:       5,
		Channel:    "#news",
	})

	text, err := cur.Run(context.Background())
	require.NoError(t, err) // delivery failure never fails the run
	assert.Contains(t, text, "2024-06-01")

	require.Len(t, mockNotifier.PostCalls(), 1)
	assert.Equal(t, "#news", mockNotifier.PostCalls()[0].Channel)
}

func TestCurator_RunSimple(t *testing.T) {
	now := time.Now().UTC()

	mockAggregator := &mocks.AggregatorMock{
		FetchAllFunc: func(ctx context.Context) []domain.FeedRecord {
			return []domain.FeedRecord{
				{Title: "newest", Published: tp(now)},
				{Title: "older", Published: tp(now.Add(-time.Hour))},
				{Title: "oldest", Published: tp(now.Add(-2 * time.Hour))},
			}
		},
	}

	var got []domain.SelectedItem
	mockSummarizer := &mocks.SummarizerMock{
		SummarizeAggregateFunc: func(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
			got = items
			return domain.AggregateSummary{Date: "2024-06-01", Highlights: []string{"h"}}, nil
		},
	}

	cur := curator.New(curator.Config{
		Aggregator: mockAggregator,
		Summarizer: mockSummarizer,
		Scorer:     curator.NewScorer(nil, nil),
	})

	text, err := cur.RunSimple(context.Background(), 2)
	require.NoError(t, err)

	// no scoring, no dedup: just the newest two in feed order
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "older", got[1].Title)

	// the simple rendering has no selected-links footer
	assert.NotContains(t, text, "選定リンク")
}
