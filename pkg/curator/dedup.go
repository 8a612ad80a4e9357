package curator

import (
	"regexp"
	"strings"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

// nonWord matches runs of characters outside letters, digits and underscore.
// Unicode-aware so Japanese titles don't collapse to an empty key.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// normalizeTitle lowercases a title and strips all non-word characters,
// collapsing punctuation and whitespace differences
func normalizeTitle(title string) string {
	return nonWord.ReplaceAllString(strings.ToLower(title), "")
}

// Dedup collapses records whose normalized titles match, keeping the
// first occurrence. Order is preserved. Titles differing by even one
// letter stay distinct; there is no fuzzy matching.
func Dedup(records []domain.FeedRecord) []domain.FeedRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.FeedRecord, 0, len(records))
	for _, rec := range records {
		key := normalizeTitle(rec.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}
