package content

import (
	"slices"
	"strings"
)

// Projects returns every project in catalog order.
func (c *Catalog) Projects() []Project { return cloneAll(c.projects) }

func (c *Catalog) ProjectByID(id string) (Project, bool) {
	return findFirst(c.projects, func(p Project) bool { return p.ID == id })
}

func (c *Catalog) ProjectBySlug(slug string) (Project, bool) {
	return findFirst(c.projects, func(p Project) bool { return p.Slug == slug })
}

// ProjectsByTechnology matches name case-insensitively against the names of
// each project's technologies.
func (c *Catalog) ProjectsByTechnology(name string) []Project {
	return filter(c.projects, func(p Project) bool { return UsesTechnology(p, name) })
}

// ProjectsByIndustry matches name case-insensitively against each project's
// industry.
func (c *Catalog) ProjectsByIndustry(name string) []Project {
	return filter(c.projects, func(p Project) bool { return strings.EqualFold(p.Industry, name) })
}

// ProjectCategories returns the distinct project industries, sorted.
func (c *Catalog) ProjectCategories() []string {
	all := make([]string, 0, len(c.projects))
	for _, p := range c.projects {
		if p.Industry != "" {
			all = append(all, p.Industry)
		}
	}
	return distinctSorted(all)
}

// Technologies returns the distinct technology names used across projects.
func (c *Catalog) Technologies() []string {
	var all []string
	for _, p := range c.projects {
		for _, t := range p.Technologies {
			all = append(all, t.Name)
		}
	}
	return distinctSorted(all)
}

// FeaturedProjects returns projects flagged as featured, in catalog order.
func (c *Catalog) FeaturedProjects() []Project {
	return filter(c.projects, func(p Project) bool { return p.IsFeatured })
}

// SearchProjects returns projects whose title, client, summary, problem,
// industry or technology names contain query, ignoring case.
func (c *Catalog) SearchProjects(query string) []Project {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Projects()
	}
	return filter(c.projects, func(p Project) bool { return ProjectMatches(p, q) })
}

// UsesTechnology reports whether p lists a technology called name.
func UsesTechnology(p Project, name string) bool {
	return slices.ContainsFunc(p.Technologies, func(t Technology) bool {
		return strings.EqualFold(t.Name, name)
	})
}

// ProjectMatches reports whether the lower-cased query q occurs in one of the
// searchable fields of p.
func ProjectMatches(p Project, q string) bool {
	for _, field := range []string{p.Title, p.Client, p.Summary, p.Problem, p.Industry} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return slices.ContainsFunc(p.Technologies, func(t Technology) bool {
		return strings.Contains(strings.ToLower(t.Name), q)
	})
}
