package parse

import (
	"log/slog"
	"regexp"
	"strings"
)

var (
	countForm   = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*$|^\d+$`)
	percentForm = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*(?:\.\d+)?%$|^\d+(?:\.\d+)?%$`)
)

// NormalizeCount strips thousands separators from a captured vote or
// voter count: "1,760" -> "1760". Input that is not a plain count is
// returned unchanged; normalization failure is logged, never fatal.
func NormalizeCount(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if !countForm.MatchString(t) {
		slog.Warn("count not normalizable, passing through", "value", s)
		return s
	}
	return strings.ReplaceAll(t, ",", "")
}

// NormalizePercent strips separators from a turnout percentage but
// keeps the percent sign: "21.53%" -> "21.53%", "1,200%" -> "1200%".
// Non-percentage input passes through unchanged.
func NormalizePercent(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}
	if !percentForm.MatchString(t) {
		slog.Warn("percent not normalizable, passing through", "value", s)
		return s
	}
	return strings.ReplaceAll(t, ",", "")
}
