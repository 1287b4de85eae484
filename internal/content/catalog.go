package content

import (
	"slices"
	"strings"
)

// Catalog holds every content collection for the site. A Catalog is never
// mutated after Load returns it; accessors hand out deep copies.
type Catalog struct {
	bios         []Bio
	services     []ServiceDescription
	testimonials []Testimonial
	caseStudies  []CaseStudyOutline
	blogIdeas    []BlogArticleIdea
	posts        []BlogPost
	projects     []Project
}

// Collections is the raw input to NewCatalog.
type Collections struct {
	Bios         []Bio
	Services     []ServiceDescription
	Testimonials []Testimonial
	CaseStudies  []CaseStudyOutline
	BlogIdeas    []BlogArticleIdea
	Posts        []BlogPost
	Projects     []Project
}

// NewCatalog validates c and builds a Catalog from it.
func NewCatalog(c Collections) (*Catalog, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Catalog{
		bios:         cloneAll(c.Bios),
		services:     cloneAll(c.Services),
		testimonials: cloneAll(c.Testimonials),
		caseStudies:  cloneAll(c.CaseStudies),
		blogIdeas:    cloneAll(c.BlogIdeas),
		posts:        cloneAll(c.Posts),
		projects:     cloneAll(c.Projects),
	}, nil
}

func findFirst[T cloner[T]](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item.clone(), true
		}
	}
	var zero T
	return zero, false
}

func filter[T cloner[T]](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item.clone())
		}
	}
	return out
}

func containsFold(values []string, name string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, name)
	})
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Bios

func (c *Catalog) Bios() []Bio { return cloneAll(c.bios) }

func (c *Catalog) BiosByType(t BioType) []Bio {
	return filter(c.bios, func(b Bio) bool { return b.Type == t })
}

// Services

func (c *Catalog) Services() []ServiceDescription { return cloneAll(c.services) }

func (c *Catalog) ServiceByID(id string) (ServiceDescription, bool) {
	return findFirst(c.services, func(s ServiceDescription) bool { return s.ID == id })
}

func (c *Catalog) ServiceBySlug(slug string) (ServiceDescription, bool) {
	return findFirst(c.services, func(s ServiceDescription) bool { return s.Slug == slug })
}

// Testimonials

func (c *Catalog) Testimonials() []Testimonial { return cloneAll(c.testimonials) }

func (c *Catalog) TestimonialByID(id string) (Testimonial, bool) {
	return findFirst(c.testimonials, func(t Testimonial) bool { return t.ID == id })
}

// TestimonialsByFocus returns testimonials whose focus is any of focuses.
func (c *Catalog) TestimonialsByFocus(focuses ...TestimonialFocus) []Testimonial {
	return filter(c.testimonials, func(t Testimonial) bool {
		return slices.Contains(focuses, t.Focus)
	})
}

// Case studies

func (c *Catalog) CaseStudies() []CaseStudyOutline { return cloneAll(c.caseStudies) }

func (c *Catalog) CaseStudyByID(id string) (CaseStudyOutline, bool) {
	return findFirst(c.caseStudies, func(cs CaseStudyOutline) bool { return cs.ID == id })
}

// Blog ideas

func (c *Catalog) BlogIdeas() []BlogArticleIdea { return cloneAll(c.blogIdeas) }

func (c *Catalog) BlogIdeaByID(id string) (BlogArticleIdea, bool) {
	return findFirst(c.blogIdeas, func(b BlogArticleIdea) bool { return b.ID == id })
}
