// Package sanitize normalizes untrusted input into bounded, control-character
// free values. Sanitizing never rejects: out-of-range numbers are clamped and
// unparseable ones fall back to a default.
package sanitize

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// Text stringifies v, strips ASCII control characters except newline,
// carriage return and tab, trims surrounding whitespace and truncates to max
// runes (max <= 0 means unbounded). A nil input yields the empty string.
// Stripping runs before trimming, and a final trim follows truncation, so
// sanitizing an already sanitized value is a no-op.
func Text(v any, max int) string {
	if v == nil {
		return ""
	}

	s := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, stringify(v))

	s = strings.TrimSpace(s)

	if max > 0 {
		runes := []rune(s)
		if len(runes) > max {
			s = strings.TrimSpace(string(runes[:max]))
		}
	}

	return s
}

// Number parses v as a floating point number and clamps it into [min, max].
// nil, empty strings and unparseable values yield def. Use math.Inf for an
// unbounded side.
func Number(v any, min, max, def float64) float64 {
	num, ok := toFloat(v)
	if !ok || math.IsNaN(num) {
		return def
	}
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// EscapeForDisplay makes text safe for embedding in an HTML context. Only
// used at the presentation boundary.
func EscapeForDisplay(text string) string {
	return html.EscapeString(text)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(fmt.Sprint(v)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}
