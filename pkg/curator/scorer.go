package curator

import (
	"strings"
	"time"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

// score weights
const (
	primaryWeight   = 3.0
	secondaryWeight = 1.5
	agentBonus      = 1.0
	freshBonus      = 2.0 // younger than 24h
	recentBonus     = 1.0 // younger than 72h
)

// Scorer assigns a relevance score to a record from keyword and
// freshness heuristics. Matching is case-insensitive substring
// containment, so a keyword can match inside a longer word.
type Scorer struct {
	primary   []string
	secondary []string
}

// NewScorer creates a scorer with the configured keyword lists
func NewScorer(primary, secondary []string) *Scorer {
	return &Scorer{primary: primary, secondary: secondary}
}

// Score computes the additive relevance score of a record at the given
// time. There is no normalization or upper bound.
func (s *Scorer) Score(rec *domain.FeedRecord, now time.Time) float64 {
	text := strings.ToLower(rec.Title + " " + rec.Summary)

	score := 0.0
	for _, kw := range s.primary {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			score += primaryWeight
		}
	}
	for _, kw := range s.secondary {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			score += secondaryWeight
		}
	}

	// fixed bonus, not configurable
	if strings.Contains(text, "agent") || strings.Contains(text, "エージェント") {
		score += agentBonus
	}

	if rec.Published != nil {
		age := now.Sub(*rec.Published)
		switch {
		case age < 24*time.Hour:
			score += freshBonus
		case age < 72*time.Hour:
			score += recentBonus
		}
	}

	return score
}
