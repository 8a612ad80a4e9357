// Package llm produces digest summaries through an OpenAI-compatible
// chat-completion API. Model output is requested as a JSON object and
// repaired into a guaranteed shape before use.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"

	"github.com/yuji-sgs/news-summary-agent/pkg/domain"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// Extractor provides short article excerpts for per-article prompts.
// A failed fetch yields an empty string, never an error.
type Extractor interface {
	Snippet(ctx context.Context, url string) string
}

// fixedTemperature is used for models that accept a temperature override
const fixedTemperature = 0.2

// bulletPlaceholder pads article summaries that came back short
const bulletPlaceholder = "（要約情報が不足しています）"

// bulletCount is the exact number of bullets an article summary carries
const bulletCount = 3

// models with these prefixes reject or fix the temperature parameter
var noTemperaturePrefixes = []string{"o1", "o3", "gpt-5"}

const aggregateSystemPrompt = "あなたは有能なアナリストです。本文は日本語で書きますが、" +
	"出力JSONのキー名は英字のみ（date, highlights, risks, opportunities）に固定してください。" +
	"キー名を日本語にしないでください。"

const articleSystemPrompt = "あなたは有能なアナリストです。本文は日本語で書きますが、" +
	"出力JSONのキー名は英字のみ（title, url, bullets）に固定してください。" +
	"キー名を日本語にしないでください。"

// Summarizer turns selected items into summaries via chat completion.
// When a call on the primary model fails it retries once with the
// fallback model, with the temperature parameter dropped.
type Summarizer struct {
	client        *openai.Client
	model         string
	fallbackModel string
	extractor     Extractor

	now func() time.Time
}

// SummarizerConfig holds construction parameters for Summarizer
type SummarizerConfig struct {
	APIKey        string
	Endpoint      string // optional, for OpenAI-compatible servers
	Model         string
	FallbackModel string
	Extractor     Extractor // optional, enables snippet-augmented prompts
}

// NewSummarizer creates a summarizer backed by an OpenAI-compatible API
func NewSummarizer(cfg SummarizerConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Summarizer{
		client:        openai.NewClientWithConfig(clientConfig),
		model:         cfg.Model,
		fallbackModel: cfg.FallbackModel,
		extractor:     cfg.Extractor,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// SummarizeAggregate produces one summary covering the whole batch.
// An empty batch returns an all-empty summary without calling the model.
// The prompt mandates 3-5 highlights and 2-4 risks/opportunities, but
// after rescue only key presence and array types are guaranteed.
func (s *Summarizer) SummarizeAggregate(ctx context.Context, items []domain.SelectedItem) (domain.AggregateSummary, error) {
	today := s.now().Format("2006-01-02")

	if len(items) == 0 {
		lgr.Printf("[INFO] no items to summarize, returning empty summary")
		return domain.AggregateSummary{
			Date:          today,
			Highlights:    []string{},
			Risks:         []string{},
			Opportunities: []string{},
		}, nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return domain.AggregateSummary{}, fmt.Errorf("marshal items: %w", err)
	}

	user := fmt.Sprintf(`次のニュース見出しとURLを要約してください。
- 出力は必ずトップレベルのJSONオブジェクトで、キーは英字で次の4つのみ:
["date","highlights","risks","opportunities"]
- 配列や別キー（例: "articles" など）でラップしないこと。
- 記事が0件でも（または要約が難しくても）必ず上記キーを返し、配列は空配列にすること。
- date は YYYY-MM-DD で今日の日付。
- highlights は3〜5個、risks/opportunities は各2〜4個。

%s`, payload)

	obj, err := s.completeJSON(ctx, aggregateSystemPrompt, user)
	if err != nil {
		return domain.AggregateSummary{}, err
	}

	obj = normalizeKeys(unwrapArticles(obj))
	return domain.AggregateSummary{
		Date:          stringOr(obj["date"], today),
		Highlights:    stringList(obj["highlights"]),
		Risks:         stringList(obj["risks"]),
		Opportunities: stringList(obj["opportunities"]),
	}, nil
}

// SummarizeArticle produces a three-bullet summary for one item. When
// useSnippet is set and the item has a URL, a short body excerpt is
// added to the prompt; a failed excerpt fetch degrades to none.
func (s *Summarizer) SummarizeArticle(ctx context.Context, item domain.SelectedItem, useSnippet bool) (domain.ArticleSummary, error) {
	snippet := ""
	if useSnippet && item.URL != "" && s.extractor != nil {
		snippet = s.extractor.Snippet(ctx, item.URL)
	}

	var sb strings.Builder
	sb.WriteString(`次のニュース記事を要約してください。
- 出力は必ずトップレベルのJSONオブジェクトで、キーは英字で次の3つのみ:
["title","url","bullets"]
- bullets は短い要点を3つ、日本語で。
`)
	sb.WriteString(fmt.Sprintf("\nタイトル: %s\n", item.Title))
	if item.URL != "" {
		sb.WriteString(fmt.Sprintf("URL: %s\n", item.URL))
	}
	if snippet != "" {
		sb.WriteString(fmt.Sprintf("本文抜粋:\n%s\n", snippet))
	}

	obj, err := s.completeJSON(ctx, articleSystemPrompt, sb.String())
	if err != nil {
		return domain.ArticleSummary{}, err
	}

	obj = normalizeKeys(unwrapArticles(obj))
	return domain.ArticleSummary{
		Title:   stringOr(obj["title"], item.Title),
		URL:     stringOr(obj["url"], item.URL),
		Bullets: padBullets(stringList(obj["bullets"])),
	}, nil
}

// SummarizeBatch summarizes each item in order. Summaries are produced
// sequentially; a hard failure on one item aborts the batch.
func (s *Summarizer) SummarizeBatch(ctx context.Context, items []domain.SelectedItem, useSnippet bool) ([]domain.ArticleSummary, error) {
	summaries := make([]domain.ArticleSummary, 0, len(items))
	for _, item := range items {
		summary, err := s.SummarizeArticle(ctx, item, useSnippet)
		if err != nil {
			return nil, fmt.Errorf("summarize %q: %w", item.Title, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// completeJSON requests a JSON-object completion and parses the raw
// text. A failed call on the primary model is retried once with the
// fallback model (temperature dropped). Unparseable output degrades to
// an empty object rather than failing.
func (s *Summarizer) completeJSON(ctx context.Context, system, user string) (map[string]any, error) {
	raw, err := s.complete(ctx, s.model, true, system, user)
	if err != nil {
		if s.fallbackModel == "" || s.fallbackModel == s.model {
			return nil, err
		}
		lgr.Printf("[WARN] completion on %s failed, retrying with %s: %v", s.model, s.fallbackModel, err)
		raw, err = s.complete(ctx, s.fallbackModel, false, system, user)
		if err != nil {
			return nil, fmt.Errorf("fallback completion failed: %w", err)
		}
	}

	var obj map[string]any
	if uerr := json.Unmarshal([]byte(raw), &obj); uerr != nil {
		lgr.Printf("[WARN] model returned invalid json, degrading to empty object: %.500s", raw)
		obj = map[string]any{}
	}
	return obj, nil
}

// complete performs one chat-completion call against the given model
func (s *Summarizer) complete(ctx context.Context, model string, allowTemperature bool, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if allowTemperature && supportsTemperature(model) {
		req.Temperature = fixedTemperature
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// supportsTemperature reports whether the model accepts a temperature
// override; o1/o3-style and gpt-5 models run with a fixed temperature
func supportsTemperature(model string) bool {
	lowered := strings.ToLower(model)
	for _, prefix := range noTemperaturePrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return false
		}
	}
	return true
}

// padBullets forces the bullet list to exactly bulletCount entries
func padBullets(bullets []string) []string {
	if len(bullets) > bulletCount {
		return bullets[:bulletCount]
	}
	for len(bullets) < bulletCount {
		bullets = append(bullets, bulletPlaceholder)
	}
	return bullets
}
