package content

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrInvalidEnum   = errors.New("invalid enum value")
	ErrMissingID     = errors.New("missing id")
)

// Valid reports whether t is one of the known bio types.
func (t BioType) Valid() bool {
	switch t {
	case BioLong, BioMedium, BioShort:
		return true
	}
	return false
}

// Validate checks the data-integrity invariants of every collection: ids and
// slugs are present and unique, and enum fields hold known values. All
// violations are reported together.
func Validate(c Collections) error {
	var errs []error

	errs = append(errs, checkKeys("service", c.Services,
		func(s ServiceDescription) string { return s.ID },
		func(s ServiceDescription) string { return s.Slug })...)
	errs = append(errs, checkKeys("testimonial", c.Testimonials,
		func(t Testimonial) string { return t.ID }, nil)...)
	errs = append(errs, checkKeys("case study", c.CaseStudies,
		func(cs CaseStudyOutline) string { return cs.ID }, nil)...)
	errs = append(errs, checkKeys("blog idea", c.BlogIdeas,
		func(b BlogArticleIdea) string { return b.ID }, nil)...)
	errs = append(errs, checkKeys("post", c.Posts,
		func(p BlogPost) string { return p.ID },
		func(p BlogPost) string { return p.Slug })...)
	errs = append(errs, checkKeys("project", c.Projects,
		func(p Project) string { return p.ID },
		func(p Project) string { return p.Slug })...)

	for i, b := range c.Bios {
		if !b.Type.Valid() {
			errs = append(errs, fmt.Errorf("bio %d: type %q: %w", i, b.Type, ErrInvalidEnum))
		}
	}
	for _, t := range c.Testimonials {
		if !t.Focus.Valid() {
			errs = append(errs, fmt.Errorf("testimonial %s: focus %q: %w", t.ID, t.Focus, ErrInvalidEnum))
		}
	}
	for _, b := range c.BlogIdeas {
		if !b.Difficulty.Valid() {
			errs = append(errs, fmt.Errorf("blog idea %s: difficulty %q: %w", b.ID, b.Difficulty, ErrInvalidEnum))
		}
	}

	return errors.Join(errs...)
}

func checkKeys[T any](kind string, items []T, id, slug func(T) string) []error {
	var errs []error
	ids := make(map[string]struct{}, len(items))
	slugs := make(map[string]struct{}, len(items))
	for i, item := range items {
		key := id(item)
		if key == "" {
			errs = append(errs, fmt.Errorf("%s %d: %w", kind, i, ErrMissingID))
		} else if _, dup := ids[key]; dup {
			errs = append(errs, fmt.Errorf("%s %s: %w", kind, key, ErrDuplicateID))
		}
		ids[key] = struct{}{}

		if slug == nil {
			continue
		}
		s := slug(item)
		if _, dup := slugs[s]; dup && s != "" {
			errs = append(errs, fmt.Errorf("%s %s: slug %q: %w", kind, key, s, ErrDuplicateSlug))
		}
		slugs[s] = struct{}{}
	}
	return errs
}
