package listing

import (
	"slices"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// ProjectQuery is the work page's filter state.
type ProjectQuery struct {
	Industry   string  `form:"industry" json:"industry,omitempty"`
	Technology string  `form:"tech" json:"tech,omitempty"`
	Search     string  `form:"q" json:"q,omitempty"`
	Sort       SortKey `form:"sort" json:"sort,omitempty"`

	HideFeatured bool `form:"-" json:"-"`
}

// Active reports whether any filter narrows the listing.
func (q ProjectQuery) Active() bool {
	return q.Industry != "" || q.Technology != "" || strings.TrimSpace(q.Search) != ""
}

// ResetProjects returns the default work query.
func ResetProjects() ProjectQuery {
	return ProjectQuery{Sort: SortLatest}
}

// FilterProjects applies q to all, the complete project catalog, with the
// same stage order as FilterPosts.
func FilterProjects(all []content.Project, q ProjectQuery) []content.Project {
	notFeatured := func(p content.Project) bool { return !q.HideFeatured || !p.IsFeatured }

	result := keep(all, notFeatured)
	if q.Industry != "" {
		result = keep(result, func(p content.Project) bool { return strings.EqualFold(p.Industry, q.Industry) })
	}
	if q.Technology != "" {
		result = keep(result, func(p content.Project) bool { return content.UsesTechnology(p, q.Technology) })
	}
	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		result = keep(all, func(p content.Project) bool {
			return content.ProjectMatches(p, term) && notFeatured(p)
		})
	}

	SortProjects(result, ParseSortKey(string(q.Sort)))
	return result
}

// SortProjects orders projects in place. SortReadTime does not apply to
// projects and falls back to SortLatest.
func SortProjects(projects []content.Project, key SortKey) {
	switch key {
	case SortImpact:
		slices.SortStableFunc(projects, func(a, b content.Project) int {
			return descending(projectImpact(a), projectImpact(b))
		})
	case SortOldest:
		byDate(projects, func(p content.Project) string { return p.Date }, SortOldest)
	default:
		byDate(projects, func(p content.Project) string { return p.Date }, SortLatest)
	}
}

func projectImpact(p content.Project) int {
	if len(p.Outcomes) == 0 {
		return 0
	}
	return ImpactValue(p.Outcomes[0].Value)
}
