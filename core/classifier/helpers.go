package classifier

import (
	"encoding/json"
	"fmt"
	"strings"
)

// num reads a numeric attribute, tolerating the types JSON and BSON
// decoders actually produce. Missing or non-numeric values default to 0.
func num(attrs map[string]any, key string) float64 {
	switch v := attrs[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// flag reads a boolean attribute, defaulting to false.
func flag(attrs map[string]any, key string) bool {
	b, _ := attrs[key].(bool)
	return b
}

// str reads a string attribute. Empty and "unspecified"/"unknown" values
// collapse to "" so callers have a single no-signal sentinel to test.
func str(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	s = strings.TrimSpace(s)
	if s == "unspecified" || s == "unknown" {
		return ""
	}
	return s
}

// sentence joins non-empty clauses with single spaces and trims the result.
func sentence(clauses ...string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// listAnd renders items as "a", "a and b" or "a, b and c".
func listAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// an picks the indefinite article for a noun phrase.
func an(noun string) string {
	if noun == "" {
		return ""
	}
	if strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		return "an " + noun
	}
	return "a " + noun
}

// counted renders "a single <noun>" or "<n> <noun>s".
func counted(n int, noun string) string {
	if n == 1 {
		return "a single " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
