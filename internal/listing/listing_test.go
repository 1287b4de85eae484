package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func loadCatalog(t *testing.T) *content.Catalog {
	t.Helper()
	cat, err := content.LoadEmbedded()
	require.NoError(t, err)
	return cat
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"":         SortLatest,
		"latest":   SortLatest,
		"oldest":   SortOldest,
		"readTime": SortReadTime,
		"impact":   SortImpact,
		"random":   SortLatest,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseSortKey(in), "ParseSortKey(%q)", in)
	}
}

func TestImpactValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+32%", 32},
		{"$1.2M", 1},
		{"-25%", -25},
		{"3x", 3},
		{"40-60%", 40},
		{"", 0},
		{"n/a", 0},
		{".5", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ImpactValue(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, 2024, ParseDate("2024-03-15").Year())
	assert.Equal(t, 2023, ParseDate("2023-01-02T10:00:00Z").Year())
	assert.True(t, ParseDate("not a date").Equal(time.Unix(0, 0)))
}

func TestFilterPosts_SortDirections(t *testing.T) {
	posts := loadCatalog(t).Posts()

	latest := FilterPosts(posts, PostQuery{Sort: SortLatest})
	require.Len(t, latest, len(posts))
	for i := 1; i < len(latest); i++ {
		assert.False(t, ParseDate(latest[i].PublishedDate).After(ParseDate(latest[i-1].PublishedDate)),
			"latest: %s after %s", latest[i].Slug, latest[i-1].Slug)
	}

	oldest := FilterPosts(posts, PostQuery{Sort: SortOldest})
	for i := 1; i < len(oldest); i++ {
		assert.False(t, ParseDate(oldest[i].PublishedDate).Before(ParseDate(oldest[i-1].PublishedDate)))
	}

	byRead := FilterPosts(posts, PostQuery{Sort: SortReadTime})
	for i := 1; i < len(byRead); i++ {
		assert.LessOrEqual(t, byRead[i-1].ReadingTime, byRead[i].ReadingTime)
	}
}

func TestFilterPosts_DoesNotMutateInput(t *testing.T) {
	posts := loadCatalog(t).Posts()
	before := make([]string, len(posts))
	for i, p := range posts {
		before[i] = p.ID
	}

	FilterPosts(posts, PostQuery{Sort: SortReadTime})

	for i, p := range posts {
		assert.Equal(t, before[i], p.ID)
	}
}

func TestFilterPosts_CategoryAndTagAreConjunctive(t *testing.T) {
	posts := loadCatalog(t).Posts()

	got := FilterPosts(posts, PostQuery{Category: "best practices", Tag: "TypeScript"})
	require.Len(t, got, 1)
	assert.Equal(t, "typescript-patterns-for-refactoring", got[0].Slug)

	assert.Empty(t, FilterPosts(posts, PostQuery{Category: "Accessibility", Tag: "react"}))
}

func TestFilterPosts_SearchReplacesCategoryFilter(t *testing.T) {
	posts := loadCatalog(t).Posts()

	// The category would exclude the accessibility post; the search result
	// comes from the full catalog regardless.
	got := FilterPosts(posts, PostQuery{Category: "Performance", Search: "accessibility"})
	require.Len(t, got, 1)
	assert.Equal(t, "building-accessible-web-applications", got[0].Slug)
}

func TestFilterPosts_HideFeatured(t *testing.T) {
	posts := loadCatalog(t).Posts()

	all := FilterPosts(posts, PostQuery{HideFeatured: true})
	for _, p := range all {
		assert.False(t, p.IsFeatured)
	}
	assert.Len(t, all, len(posts)-1)

	// The featured post matches "react" but stays hidden after the search
	// replaces the set.
	searched := FilterPosts(posts, PostQuery{Search: "react", HideFeatured: true})
	for _, p := range searched {
		assert.False(t, p.IsFeatured)
	}
	assert.NotEmpty(t, FilterPosts(posts, PostQuery{Search: "react"}))
}

func TestFilterPosts_EmptyResult(t *testing.T) {
	got := FilterPosts(loadCatalog(t).Posts(), PostQuery{Category: "Cooking"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterPosts_UnparsableDatesSortAsEpoch(t *testing.T) {
	posts := []content.BlogPost{
		{ID: "a", PublishedDate: "garbage"},
		{ID: "b", PublishedDate: "2020-01-01"},
		{ID: "c", PublishedDate: "1960-06-01"},
	}

	got := FilterPosts(posts, PostQuery{Sort: SortLatest})
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))
}

func TestFilterProjects_HealthcareLatest(t *testing.T) {
	projects := loadCatalog(t).Projects()

	got := FilterProjects(projects, ProjectQuery{Industry: "Healthcare", Sort: SortLatest})
	require.NotEmpty(t, got)
	assert.Equal(t, "healthcare-patient-portal", got[0].Slug)
	assert.Len(t, got, 1)
}

func TestFilterProjects_Technology(t *testing.T) {
	projects := loadCatalog(t).Projects()

	got := FilterProjects(projects, ProjectQuery{Technology: "typescript"})
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, content.UsesTechnology(p, "TypeScript"))
	}
}

func TestFilterProjects_ImpactSort(t *testing.T) {
	projects := []content.Project{
		{ID: "revenue", Outcomes: []content.Outcome{{Value: "$1.2M"}}},
		{ID: "engagement", Outcomes: []content.Outcome{{Value: "+32%"}}},
		{ID: "none"},
		{ID: "latency", Outcomes: []content.Outcome{{Value: "60%"}}},
		{ID: "negative", Outcomes: []content.Outcome{{Value: "-25%"}}},
	}

	got := FilterProjects(projects, ProjectQuery{Sort: SortImpact})
	assert.Equal(t, []string{"latency", "engagement", "revenue", "none", "negative"}, projectIDs(got))
}

func TestFilterProjects_SearchReplaces(t *testing.T) {
	projects := loadCatalog(t).Projects()

	got := FilterProjects(projects, ProjectQuery{Industry: "Finance", Search: "storybook"})
	require.Len(t, got, 1)
	assert.Equal(t, "saas-design-system", got[0].Slug)
}

func TestReset(t *testing.T) {
	assert.Equal(t, PostQuery{Sort: SortLatest}, ResetPosts())
	assert.False(t, ResetPosts().Active())
	assert.Equal(t, ProjectQuery{Sort: SortLatest}, ResetProjects())
	assert.True(t, PostQuery{Tag: "x"}.Active())
	assert.True(t, ProjectQuery{Search: "x"}.Active())
}

func ids(posts []content.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func projectIDs(projects []content.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}
