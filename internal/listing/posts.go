package listing

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// PostQuery is the blog page's filter state. The zero value lists every
// post, newest first.
type PostQuery struct {
	Category string  `form:"category" json:"category,omitempty"`
	Tag      string  `form:"tag" json:"tag,omitempty"`
	Search   string  `form:"q" json:"q,omitempty"`
	Sort     SortKey `form:"sort" json:"sort,omitempty"`

	// HideFeatured drops featured posts because the page shows the featured
	// post in its own slot.
	HideFeatured bool `form:"-" json:"-"`
}

// Active reports whether any filter narrows the listing.
func (q PostQuery) Active() bool {
	return q.Category != "" || q.Tag != "" || strings.TrimSpace(q.Search) != ""
}

// ResetPosts returns the default blog query.
func ResetPosts() PostQuery {
	return PostQuery{Sort: SortLatest}
}

// FilterPosts applies q to all, the complete post catalog.
//
// Category and tag narrow conjunctively. A search query does not narrow the
// category/tag result: it replaces it with a search over all, and then drops
// featured posts again when HideFeatured is set.
func FilterPosts(all []content.BlogPost, q PostQuery) []content.BlogPost {
	notFeatured := func(p content.BlogPost) bool { return !q.HideFeatured || !p.IsFeatured }

	result := keep(all, notFeatured)
	if q.Category != "" {
		result = keep(result, func(p content.BlogPost) bool {
			return slices.ContainsFunc(p.Categories, func(c string) bool { return strings.EqualFold(c, q.Category) })
		})
	}
	if q.Tag != "" {
		result = keep(result, func(p content.BlogPost) bool {
			return slices.ContainsFunc(p.Tags, func(t string) bool { return strings.EqualFold(t, q.Tag) })
		})
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		result = keep(all, func(p content.BlogPost) bool {
			return content.PostMatches(p, term) && notFeatured(p)
		})
	}

	SortPosts(result, ParseSortKey(string(q.Sort)))
	return result
}

// SortPosts orders posts in place. SortImpact does not apply to posts and
// falls back to SortLatest.
func SortPosts(posts []content.BlogPost, key SortKey) {
	switch key {
	case SortReadTime:
		slices.SortStableFunc(posts, func(a, b content.BlogPost) int {
			return cmp.Compare(a.ReadingTime, b.ReadingTime)
		})
	case SortOldest:
		byDate(posts, func(p content.BlogPost) string { return p.PublishedDate }, SortOldest)
	default:
		byDate(posts, func(p content.BlogPost) string { return p.PublishedDate }, SortLatest)
	}
}
