package recommend

import (
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// Rule maps a context to a bucket. A rule matches when the context contains
// any of its keywords; matching is case-sensitive on the raw context. Rules
// are evaluated in order and the first match wins.
type Rule[B any] struct {
	Keywords []string
	Bucket   B
}

func (r Rule[B]) matches(context string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(context, kw) {
			return true
		}
	}
	return false
}

// firstMatch returns the bucket of the first matching rule.
func firstMatch[B any](rules []Rule[B], context string) (B, bool) {
	for _, r := range rules {
		if r.matches(context) {
			return r.Bucket, true
		}
	}
	var zero B
	return zero, false
}

// DefaultTestimonialRules pick testimonial focus buckets. No match means the
// whole testimonial catalog.
var DefaultTestimonialRules = []Rule[[]content.TestimonialFocus]{
	{Keywords: []string{"technical"}, Bucket: []content.TestimonialFocus{content.FocusTechnicalExpertise, content.FocusProblemSolving}},
	{Keywords: []string{"communication"}, Bucket: []content.TestimonialFocus{content.FocusCommunication, content.FocusRelationship}},
	{Keywords: []string{"performance"}, Bucket: []content.TestimonialFocus{content.FocusOutcomes, content.FocusProblemSolving}},
}

// DefaultCaseStudyRules pick case studies by id. No match means none.
var DefaultCaseStudyRules = []Rule[[]string]{
	{Keywords: []string{"performance", "e-commerce", "ecommerce"}, Bucket: []string{"ecommerce-platform-optimization"}},
	{Keywords: []string{"healthcare", "accessibility"}, Bucket: []string{"healthcare-patient-portal"}},
	{Keywords: []string{"fintech", "real-time", "dashboard"}, Bucket: []string{"fintech-realtime-dashboard"}},
	{Keywords: []string{"legacy", "migration", "architecture"}, Bucket: []string{"legacy-system-modernization"}},
}

// DefaultBlogIdeaRules pick blog ideas whose id or title contains one of the
// bucket tokens. No match means none.
var DefaultBlogIdeaRules = []Rule[[]string]{
	{Keywords: []string{"performance"}, Bucket: []string{"performance"}},
	{Keywords: []string{"accessibility"}, Bucket: []string{"accessib"}},
	{Keywords: []string{"architecture", "legacy"}, Bucket: []string{"architecture", "legacy"}},
	{Keywords: []string{"testing"}, Bucket: []string{"test"}},
	{Keywords: []string{"communication", "process"}, Bucket: []string{"communicat", "process"}},
}

// ideaMatches reports whether idea's id or title contains any token.
func ideaMatches(idea content.BlogArticleIdea, tokens []string) bool {
	title := strings.ToLower(idea.Title)
	for _, tok := range tokens {
		if strings.Contains(idea.ID, tok) || strings.Contains(title, tok) {
			return true
		}
	}
	return false
}
