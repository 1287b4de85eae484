package content

import (
	"slices"
	"strings"
)

// Posts returns every blog post in catalog order.
func (c *Catalog) Posts() []BlogPost { return cloneAll(c.posts) }

func (c *Catalog) PostByID(id string) (BlogPost, bool) {
	return findFirst(c.posts, func(p BlogPost) bool { return p.ID == id })
}

func (c *Catalog) PostBySlug(slug string) (BlogPost, bool) {
	return findFirst(c.posts, func(p BlogPost) bool { return p.Slug == slug })
}

// PostsByCategory matches name case-insensitively against each post's
// categories.
func (c *Catalog) PostsByCategory(name string) []BlogPost {
	return filter(c.posts, func(p BlogPost) bool { return containsFold(p.Categories, name) })
}

// PostsByTag matches name case-insensitively against each post's tags.
func (c *Catalog) PostsByTag(name string) []BlogPost {
	return filter(c.posts, func(p BlogPost) bool { return containsFold(p.Tags, name) })
}

// Categories returns the distinct post categories, sorted.
func (c *Catalog) Categories() []string {
	var all []string
	for _, p := range c.posts {
		all = append(all, p.Categories...)
	}
	return distinctSorted(all)
}

// Tags returns the distinct post tags, sorted.
func (c *Catalog) Tags() []string {
	var all []string
	for _, p := range c.posts {
		all = append(all, p.Tags...)
	}
	return distinctSorted(all)
}

// FeaturedPost returns the first post flagged as featured.
func (c *Catalog) FeaturedPost() (BlogPost, bool) {
	return findFirst(c.posts, func(p BlogPost) bool { return p.IsFeatured })
}

// SearchPosts returns posts whose title, excerpt, categories or tags contain
// query, ignoring case. An empty query matches everything.
func (c *Catalog) SearchPosts(query string) []BlogPost {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Posts()
	}
	return filter(c.posts, func(p BlogPost) bool { return PostMatches(p, q) })
}

// PostMatches reports whether the lower-cased query q occurs in one of the
// searchable fields of p.
func PostMatches(p BlogPost, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	return anyContains(p.Categories, q) || anyContains(p.Tags, q)
}

func anyContains(values []string, q string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.Contains(strings.ToLower(v), q)
	})
}
