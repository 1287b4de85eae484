// Package recommend maps a free-text context, such as a page name plus the
// technologies it mentions, to related testimonials, case studies, blog
// ideas and bios.
package recommend

import (
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
)

const (
	strategicCaseStudies  = 1
	strategicBlogIdeas    = 2
	strategicTestimonials = 1
)

// Source provides the catalog to recommend from.
type Source interface {
	Current() *content.Catalog
}

// Recommendations is the bundle shown alongside a page.
type Recommendations struct {
	RelatedCaseStudy *content.CaseStudyOutline `json:"relatedCaseStudy,omitempty"`
	RelatedBlogIdeas []content.BlogArticleIdea `json:"relatedBlogIdeas"`
	Testimonial      *content.Testimonial      `json:"testimonial,omitempty"`
}

// Engine evaluates recommendation rules against a catalog. It is safe for
// concurrent use.
type Engine struct {
	source           Source
	logger           *zap.Logger
	testimonialRules []Rule[[]content.TestimonialFocus]
	caseStudyRules   []Rule[[]string]
	blogIdeaRules    []Rule[[]string]

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand makes selection use rng, e.g. a seeded source in tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithSeed makes selection deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithTestimonialRules(rules []Rule[[]content.TestimonialFocus]) Option {
	return func(e *Engine) { e.testimonialRules = rules }
}

func WithCaseStudyRules(rules []Rule[[]string]) Option {
	return func(e *Engine) { e.caseStudyRules = rules }
}

func WithBlogIdeaRules(rules []Rule[[]string]) Option {
	return func(e *Engine) { e.blogIdeaRules = rules }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine returns an Engine reading from source with the default rules and
// a time-seeded random source.
func NewEngine(source Source, opts ...Option) *Engine {
	now := uint64(time.Now().UnixNano())
	e := &Engine{
		source:           source,
		logger:           zap.NewNop(),
		testimonialRules: DefaultTestimonialRules,
		caseStudyRules:   DefaultCaseStudyRules,
		blogIdeaRules:    DefaultBlogIdeaRules,
		rng:              rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// shuffled returns a shuffled copy of items.
func shuffled[T any](e *Engine, items []T) []T {
	out := slices.Clone(items)
	e.mu.Lock()
	e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	e.mu.Unlock()
	return out
}

func head[T any](items []T, count int) []T {
	if count < 0 {
		count = 0
	}
	if count < len(items) {
		return items[:count]
	}
	return items
}

// RelevantTestimonials returns up to count testimonials from the bucket the
// context selects, in random order.
func (e *Engine) RelevantTestimonials(context string, count int) []content.Testimonial {
	return e.relevantTestimonials(e.source.Current(), context, count)
}

func (e *Engine) relevantTestimonials(cat *content.Catalog, context string, count int) []content.Testimonial {
	candidates := e.testimonialCandidates(cat, context)
	return head(shuffled(e, candidates), count)
}

func (e *Engine) testimonialCandidates(cat *content.Catalog, context string) []content.Testimonial {
	focuses, ok := firstMatch(e.testimonialRules, context)
	if !ok {
		return cat.Testimonials()
	}
	return cat.TestimonialsByFocus(focuses...)
}

// RelatedCaseStudies returns up to count case studies from the bucket the
// context selects, in rule order.
func (e *Engine) RelatedCaseStudies(context string, count int) []content.CaseStudyOutline {
	return e.relatedCaseStudies(e.source.Current(), context, count)
}

func (e *Engine) relatedCaseStudies(cat *content.Catalog, context string, count int) []content.CaseStudyOutline {
	ids, ok := firstMatch(e.caseStudyRules, context)
	if !ok {
		return []content.CaseStudyOutline{}
	}
	out := make([]content.CaseStudyOutline, 0, len(ids))
	for _, id := range ids {
		if cs, found := cat.CaseStudyByID(id); found {
			out = append(out, cs)
		}
	}
	return head(out, count)
}

// RelatedBlogIdeas returns up to count blog ideas from the bucket the context
// selects, in random order.
func (e *Engine) RelatedBlogIdeas(context string, count int) []content.BlogArticleIdea {
	return e.relatedBlogIdeas(e.source.Current(), context, count)
}

func (e *Engine) relatedBlogIdeas(cat *content.Catalog, context string, count int) []content.BlogArticleIdea {
	tokens, ok := firstMatch(e.blogIdeaRules, context)
	if !ok {
		return []content.BlogArticleIdea{}
	}
	candidates := []content.BlogArticleIdea{}
	for _, idea := range cat.BlogIdeas() {
		if ideaMatches(idea, tokens) {
			candidates = append(candidates, idea)
		}
	}
	return head(shuffled(e, candidates), count)
}

// StrategicRecommendations bundles one case study, two blog ideas and one
// testimonial for context, all drawn from the same catalog snapshot.
// Testimonial is nil only when the catalog has no testimonials.
func (e *Engine) StrategicRecommendations(context string) Recommendations {
	cat := e.source.Current()
	rec := Recommendations{
		RelatedBlogIdeas: e.relatedBlogIdeas(cat, context, strategicBlogIdeas),
	}
	if cs := e.relatedCaseStudies(cat, context, strategicCaseStudies); len(cs) > 0 {
		rec.RelatedCaseStudy = &cs[0]
	}
	ts := e.relevantTestimonials(cat, context, strategicTestimonials)
	if len(ts) == 0 {
		// Matched bucket is empty: fall back to the whole catalog.
		ts = head(shuffled(e, cat.Testimonials()), strategicTestimonials)
	}
	if len(ts) > 0 {
		rec.Testimonial = &ts[0]
	}

	e.logger.Debug("Computed recommendations",
		zap.String("context", context),
		zap.Bool("case_study", rec.RelatedCaseStudy != nil),
		zap.Int("blog_ideas", len(rec.RelatedBlogIdeas)),
		zap.Bool("testimonial", rec.Testimonial != nil))
	return rec
}
