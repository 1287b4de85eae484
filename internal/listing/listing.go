// Package listing derives the displayed subset and order of the blog and
// work pages from a full catalog and the visitor's filter selection.
package listing

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortLatest   SortKey = "latest"
	SortOldest   SortKey = "oldest"
	SortReadTime SortKey = "readTime"
	SortImpact   SortKey = "impact"
)

// ParseSortKey maps a query-string value to a SortKey. Anything unknown,
// including the empty string, is SortLatest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortOldest, SortReadTime, SortImpact:
		return SortKey(s)
	}
	return SortLatest
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses an ISO date or timestamp. Unparsable input yields the
// Unix epoch so that sorting stays total.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// ImpactValue extracts the numeric key used by the impact sort. Every
// character outside [0-9.-] is removed and the leading integer of the rest is
// returned, so "+32%" is 32 and "$1.2M" is 1. No leading integer yields 0.
func ImpactValue(value string) int {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	end := 0
	if strings.HasPrefix(stripped, "-") {
		end = 1
	}
	for end < len(stripped) && stripped[end] >= '0' && stripped[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(stripped[:end])
	if err != nil {
		return 0
	}
	return n
}

func byDate[T any](items []T, date func(T) string, key SortKey) {
	slices.SortStableFunc(items, func(a, b T) int {
		c := ParseDate(date(a)).Compare(ParseDate(date(b)))
		if key == SortOldest {
			return c
		}
		return -c
	})
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func descending(a, b int) int { return cmp.Compare(b, a) }
