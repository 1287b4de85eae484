package content

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := LoadEmbedded()
	require.NoError(t, err)
	return cat
}

func TestLoadEmbedded_AllCollectionsSeeded(t *testing.T) {
	cat := loadTestCatalog(t)

	assert.NotEmpty(t, cat.Bios())
	assert.NotEmpty(t, cat.Services())
	assert.NotEmpty(t, cat.Testimonials())
	assert.NotEmpty(t, cat.CaseStudies())
	assert.NotEmpty(t, cat.BlogIdeas())
	assert.NotEmpty(t, cat.Posts())
	assert.NotEmpty(t, cat.Projects())

	for _, bt := range []BioType{BioLong, BioMedium, BioShort} {
		assert.NotEmpty(t, cat.BiosByType(bt), "expected at least one %s bio", bt)
	}
}

func TestCatalog_UniqueIDsAndSlugs(t *testing.T) {
	cat := loadTestCatalog(t)

	assertUnique := func(kind string, keys []string) {
		seen := map[string]bool{}
		for _, k := range keys {
			assert.False(t, seen[k], "%s: duplicate key %q", kind, k)
			seen[k] = true
		}
	}

	var ids, slugs []string
	for _, p := range cat.Posts() {
		ids = append(ids, p.ID)
		slugs = append(slugs, p.Slug)
	}
	assertUnique("post id", ids)
	assertUnique("post slug", slugs)

	ids, slugs = nil, nil
	for _, p := range cat.Projects() {
		ids = append(ids, p.ID)
		slugs = append(slugs, p.Slug)
	}
	assertUnique("project id", ids)
	assertUnique("project slug", slugs)

	ids = nil
	for _, tm := range cat.Testimonials() {
		ids = append(ids, tm.ID)
	}
	assertUnique("testimonial id", ids)

	ids = nil
	for _, cs := range cat.CaseStudies() {
		ids = append(ids, cs.ID)
	}
	assertUnique("case study id", ids)

	ids = nil
	for _, b := range cat.BlogIdeas() {
		ids = append(ids, b.ID)
	}
	assertUnique("blog idea id", ids)
}

func TestCatalog_LookupRoundTrip(t *testing.T) {
	cat := loadTestCatalog(t)

	for _, p := range cat.Posts() {
		got, ok := cat.PostByID(p.ID)
		require.True(t, ok, "post %s", p.ID)
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("PostByID(%s) mismatch (-want +got):\n%s", p.ID, diff)
		}
		got, ok = cat.PostBySlug(p.Slug)
		require.True(t, ok)
		assert.Equal(t, p.ID, got.ID)
	}
	for _, p := range cat.Projects() {
		got, ok := cat.ProjectByID(p.ID)
		require.True(t, ok, "project %s", p.ID)
		if diff := cmp.Diff(p, got); diff != "" {
			t.Errorf("ProjectByID(%s) mismatch (-want +got):\n%s", p.ID, diff)
		}
	}
	for _, s := range cat.Services() {
		got, ok := cat.ServiceBySlug(s.Slug)
		require.True(t, ok)
		assert.Equal(t, s.ID, got.ID)
	}
	for _, tm := range cat.Testimonials() {
		got, ok := cat.TestimonialByID(tm.ID)
		require.True(t, ok)
		assert.Equal(t, tm, got)
	}
	for _, cs := range cat.CaseStudies() {
		_, ok := cat.CaseStudyByID(cs.ID)
		assert.True(t, ok)
	}
	for _, b := range cat.BlogIdeas() {
		_, ok := cat.BlogIdeaByID(b.ID)
		assert.True(t, ok)
	}
}

func TestCatalog_NotFound(t *testing.T) {
	cat := loadTestCatalog(t)

	_, ok := cat.PostBySlug("does-not-exist")
	assert.False(t, ok)
	_, ok = cat.ProjectBySlug("does-not-exist")
	assert.False(t, ok)
	_, ok = cat.ServiceByID("")
	assert.False(t, ok)
	assert.Empty(t, cat.PostsByCategory("No Such Category"))
	assert.Empty(t, cat.SearchPosts("zzzz-no-match"))
}

func TestPostBySlug_OptimizingReactPerformance(t *testing.T) {
	cat := loadTestCatalog(t)

	post, ok := cat.PostBySlug("optimizing-react-performance")
	require.True(t, ok)
	assert.Equal(t, "Optimizing React Performance: Strategies That Actually Work", post.Title)
	assert.Equal(t, 8, post.ReadingTime)
	assert.Contains(t, post.Content, "Measure before you memoize")
}

func TestPostsByCategory_Membership(t *testing.T) {
	cat := loadTestCatalog(t)

	perf := cat.PostsByCategory("Performance")
	slugs := postSlugs(perf)
	assert.Contains(t, slugs, "optimizing-react-performance")
	assert.NotContains(t, slugs, "building-accessible-web-applications")

	for _, name := range cat.Categories() {
		for _, variant := range []string{name, strings.ToLower(name), strings.ToUpper(name)} {
			matched := map[string]bool{}
			for _, p := range cat.PostsByCategory(variant) {
				assert.True(t, containsFold(p.Categories, name), "post %s returned for %q", p.Slug, variant)
				matched[p.ID] = true
			}
			for _, p := range cat.Posts() {
				if !matched[p.ID] {
					assert.False(t, containsFold(p.Categories, name), "post %s missing for %q", p.Slug, variant)
				}
			}
		}
	}
}

func TestPostsByTag_CaseInsensitive(t *testing.T) {
	cat := loadTestCatalog(t)

	assert.Equal(t, postSlugs(cat.PostsByTag("react")), postSlugs(cat.PostsByTag("REACT")))
	for _, p := range cat.PostsByTag("typescript") {
		assert.True(t, containsFold(p.Tags, "typescript"))
	}
}

func TestSearchPosts_Accessibility(t *testing.T) {
	cat := loadTestCatalog(t)

	got := cat.SearchPosts("accessibility")
	require.Len(t, got, 1)
	assert.Equal(t, "Building Truly Accessible Web Applications", got[0].Title)

	assert.Equal(t, postSlugs(got), postSlugs(cat.SearchPosts("  ACCESSIBILITY ")))
}

func TestSearchPosts_OnlyReturnsMatches(t *testing.T) {
	cat := loadTestCatalog(t)

	for _, q := range []string{"react", "test", "a", "Best", "wcag", "architecture"} {
		lq := strings.ToLower(q)
		hits := map[string]bool{}
		for _, p := range cat.SearchPosts(q) {
			assert.True(t, PostMatches(p, lq), "query %q returned non-matching post %s", q, p.Slug)
			hits[p.ID] = true
		}
		for _, p := range cat.Posts() {
			if !hits[p.ID] {
				assert.False(t, PostMatches(p, lq), "query %q missed post %s", q, p.Slug)
			}
		}
	}
}

func TestSearchPosts_EmptyQueryReturnsAll(t *testing.T) {
	cat := loadTestCatalog(t)
	assert.Len(t, cat.SearchPosts(""), len(cat.Posts()))
}

func TestCategoriesAndTags_Distinct(t *testing.T) {
	cat := loadTestCatalog(t)

	cats := cat.Categories()
	assert.Contains(t, cats, "Performance")
	assert.Contains(t, cats, "Accessibility")
	// "Best Practices" appears on two posts.
	count := 0
	for _, c := range cats {
		if c == "Best Practices" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.NotEmpty(t, cat.Tags())
}

func TestProjectsByIndustry(t *testing.T) {
	cat := loadTestCatalog(t)

	got := cat.ProjectsByIndustry("healthcare")
	require.Len(t, got, 1)
	assert.Equal(t, "healthcare-patient-portal", got[0].Slug)

	assert.Contains(t, cat.ProjectCategories(), "Healthcare")
	assert.Empty(t, cat.ProjectsByIndustry("Agriculture"))
}

func TestProjectsByTechnology(t *testing.T) {
	cat := loadTestCatalog(t)

	got := cat.ProjectsByTechnology("go")
	require.Len(t, got, 1)
	assert.Equal(t, "fintech-trading-dashboard", got[0].Slug)

	for _, p := range cat.ProjectsByTechnology("React") {
		assert.True(t, UsesTechnology(p, "react"))
	}
	assert.Contains(t, cat.Technologies(), "React")
}

func TestSearchProjects(t *testing.T) {
	cat := loadTestCatalog(t)

	got := cat.SearchProjects("storybook")
	require.Len(t, got, 1)
	assert.Equal(t, "saas-design-system", got[0].Slug)
	assert.Len(t, cat.SearchProjects(""), len(cat.Projects()))
}

func TestAccessors_ReturnCopies(t *testing.T) {
	cat := loadTestCatalog(t)

	posts := cat.Posts()
	posts[0].Title = "mutated"
	assert.NotEqual(t, "mutated", cat.Posts()[0].Title)
}

func TestAccessors_ReturnDeepCopies(t *testing.T) {
	cat := loadTestCatalog(t)

	post, ok := cat.PostBySlug("optimizing-react-performance")
	require.True(t, ok)
	post.Categories[0] = "mutated"
	post.Tags[0] = "mutated"
	cat.Posts()[0].Categories[0] = "mutated"
	cat.PostsByTag("react")[0].Tags[0] = "mutated"

	again, _ := cat.PostBySlug("optimizing-react-performance")
	assert.Equal(t, "Performance", again.Categories[0])
	assert.Equal(t, "react", again.Tags[0])

	project, ok := cat.ProjectBySlug("fintech-trading-dashboard")
	require.True(t, ok)
	project.Technologies[0].Name = "mutated"
	project.Outcomes[0].Value = "mutated"
	cat.FeaturedProjects()[0].Outcomes[0].Value = "mutated"

	freshProject, _ := cat.ProjectBySlug("fintech-trading-dashboard")
	assert.NotEqual(t, "mutated", freshProject.Technologies[0].Name)
	assert.Equal(t, "60%", freshProject.Outcomes[0].Value)
	assert.NotContains(t, cat.Technologies(), "mutated")
	for _, p := range cat.Projects() {
		assert.NotEqual(t, "mutated", p.Outcomes[0].Value, p.ID)
	}

	svc := cat.Services()[0]
	svc.Benefits[0] = "mutated"
	assert.NotEqual(t, "mutated", cat.Services()[0].Benefits[0])

	cs := cat.CaseStudies()[0]
	cs.Results.Metrics[0] = "mutated"
	assert.NotEqual(t, "mutated", cat.CaseStudies()[0].Results.Metrics[0])

	idea := cat.BlogIdeas()[0]
	idea.TargetKeywords[0] = "mutated"
	assert.NotEqual(t, "mutated", cat.BlogIdeas()[0].TargetKeywords[0])
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	in := Collections{Posts: []BlogPost{{ID: "1", Slug: "a", Tags: []string{"go"}}}}
	cat, err := NewCatalog(in)
	require.NoError(t, err)

	in.Posts[0].Tags[0] = "mutated"
	assert.Equal(t, []string{"go"}, cat.Posts()[0].Tags)
}

func TestFeatured(t *testing.T) {
	cat := loadTestCatalog(t)

	post, ok := cat.FeaturedPost()
	require.True(t, ok)
	assert.True(t, post.IsFeatured)

	for _, p := range cat.FeaturedProjects() {
		assert.True(t, p.IsFeatured)
	}
}

func TestTestimonialsByFocus(t *testing.T) {
	cat := loadTestCatalog(t)

	got := cat.TestimonialsByFocus(FocusOutcomes, FocusProblemSolving)
	require.NotEmpty(t, got)
	for _, tm := range got {
		assert.Contains(t, []TestimonialFocus{FocusOutcomes, FocusProblemSolving}, tm.Focus)
	}
}

func postSlugs(posts []BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}
