package content

import "slices"

// cloner is a record that can copy itself without sharing slices.
type cloner[T any] interface {
	clone() T
}

func cloneAll[T cloner[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}

func (b Bio) clone() Bio { return b }

func (t Testimonial) clone() Testimonial { return t }

func (s ServiceDescription) clone() ServiceDescription {
	s.Benefits = slices.Clone(s.Benefits)
	s.Technologies = slices.Clone(s.Technologies)
	s.Outcomes = slices.Clone(s.Outcomes)
	return s
}

func (cs CaseStudyOutline) clone() CaseStudyOutline {
	cs.Objectives = slices.Clone(cs.Objectives)
	cs.TechnicalChallenges = slices.Clone(cs.TechnicalChallenges)
	cs.Technologies = slices.Clone(cs.Technologies)
	cs.Results.Metrics = slices.Clone(cs.Results.Metrics)
	cs.LessonsLearned = slices.Clone(cs.LessonsLearned)
	return cs
}

func (b BlogArticleIdea) clone() BlogArticleIdea {
	b.TargetKeywords = slices.Clone(b.TargetKeywords)
	b.ClientProblemsAddressed = slices.Clone(b.ClientProblemsAddressed)
	return b
}

func (p BlogPost) clone() BlogPost {
	p.Categories = slices.Clone(p.Categories)
	p.Tags = slices.Clone(p.Tags)
	return p
}

func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Outcomes = slices.Clone(p.Outcomes)
	return p
}
