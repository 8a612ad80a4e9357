// Package digest renders summarized results into the fixed plain-text
// layout posted to the notification channel.
package digest

import (
	"fmt"
	"strings"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

// visual separator between article blocks
const separator = "――――――――――"

// RenderAggregate renders a date header, the highlights section and,
// when non-empty, the risks and opportunities sections. When picks are
// given, a numbered list of the selected links is appended.
func RenderAggregate(summary domain.AggregateSummary, picks []domain.FeedRecord) string {
	lines := []string{fmt.Sprintf("📅 %s", summary.Date)}

	lines = append(lines, "\n【ハイライト】")
	for _, h := range summary.Highlights {
		lines = append(lines, "・"+h)
	}

	if len(summary.Risks) > 0 {
		lines = append(lines, "\n【リスク】")
		for _, r := range summary.Risks {
			lines = append(lines, "・"+r)
		}
	}

	if len(summary.Opportunities) > 0 {
		lines = append(lines, "\n【機会】")
		for _, o := range summary.Opportunities {
			lines = append(lines, "・"+o)
		}
	}

	if len(picks) > 0 {
		lines = append(lines, fmt.Sprintf("\n【今回の選定リンク（上位%d件）】", len(picks)))
		for i, p := range picks {
			line := fmt.Sprintf("%d. %s", i+1, p.Title)
			if p.Source != "" {
				line += fmt.Sprintf(" （%s）", p.Source)
			}
			lines = append(lines, line+"\n"+p.Link)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderArticles renders one block per article summary in selection
// order: title, URL, up to three bullets, then a separator line.
func RenderArticles(summaries []domain.ArticleSummary) string {
	var sb strings.Builder
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("📰 %s\n", s.Title))
		if s.URL != "" {
			sb.WriteString(fmt.Sprintf("🔗 %s\n", s.URL))
		}
		for _, b := range s.Bullets {
			sb.WriteString("・" + b + "\n")
		}
		sb.WriteString(separator + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderEmpty renders the digest for a run whose selection came up empty
func RenderEmpty(date string, maxAgeDays int) string {
	return fmt.Sprintf("📅 %s\n直近%d日以内で条件に合うニュースは見つかりませんでした。", date, maxAgeDays)
}
