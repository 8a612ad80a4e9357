package llm

import "strings"

// Rescue stages for semi-structured model output. Each stage is pure
// and composable: unwrap the articles wrapper, normalize localized key
// names, then coerce field values into required types. Applied in that
// order, they guarantee a minimum shape for any parseable output.

// localizedKeys maps key names models sometimes emit despite
// instructions onto the canonical English keys.
var localizedKeys = map[string]string{
	"日付":     "date",
	"日時":     "date",
	"ハイライト":  "highlights",
	"要点":     "highlights",
	"ポイント":   "highlights",
	"リスク":    "risks",
	"懸念":     "risks",
	"機会":     "opportunities",
	"チャンス":   "opportunities",
	"タイトル":   "title",
	"見出し":    "title",
	"箇条書き":   "bullets",
}

// unwrapArticles unwraps a {"articles": [...]} wrapper to its first
// element when the model ignored the no-wrapping instruction
func unwrapArticles(obj map[string]any) map[string]any {
	wrapped, ok := obj["articles"].([]any)
	if !ok || len(wrapped) == 0 {
		return obj
	}
	if first, ok := wrapped[0].(map[string]any); ok {
		return first
	}
	return obj
}

// normalizeKeys maps localized key names onto the canonical ones
func normalizeKeys(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		if canonical, ok := localizedKeys[k]; ok {
			k = canonical
		}
		out[k] = v
	}
	return out
}

// stringOr coerces v to a string, substituting def when v is absent,
// blank or not a string
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// stringList coerces v to a list of strings. A non-blank string becomes
// a one-element list, a blank one an empty list; anything else that is
// not a list yields an empty list. Non-string list elements are dropped.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		if strings.TrimSpace(val) == "" {
			return []string{}
		}
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	default:
		return []string{}
	}
}
