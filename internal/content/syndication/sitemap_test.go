package syndication

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/content/taxonomy"
)

/*
TestBuildSitemap_Golden pins the full sitemap document: static entries,
one post, one category, one tag, and one page, with a blank-slug post
skipped.
*/
func TestBuildSitemap_Golden(t *testing.T) {
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	posts := []post.Index{
		{
			ID:       1,
			Slug:     "hello-hanoi",
			Modified: time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC),
		},
		{ID: 2, Slug: ""},
	}
	pages := []page.Index{
		{
			ID:       1,
			Slug:     "about",
			Modified: time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC),
		},
	}
	categories := []taxonomy.Category{{ID: 1, Slug: "travel", Name: "Travel"}}
	tags := []taxonomy.Tag{{ID: 1, Slug: "hanoi", Name: "Hanoi"}}

	body, err := marshalDocument(buildSitemap(testSite(), posts, pages, categories, tags, now))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sitemap", body)
}

/*
TestBuildSitemap_Ordering verifies section order: static entries, posts,
categories, tags, pages.
*/
func TestBuildSitemap_Ordering(t *testing.T) {
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)

	sitemap := buildSitemap(testSite(),
		[]post.Index{{ID: 1, Slug: "a-post", Modified: now}},
		[]page.Index{{ID: 1, Slug: "a-page", Modified: now}},
		[]taxonomy.Category{{ID: 1, Slug: "a-category"}},
		[]taxonomy.Tag{{ID: 1, Slug: "a-tag"}},
		now,
	)

	require.Len(t, sitemap.URLs, 6)
	assert.Equal(t, "https://example.com", sitemap.URLs[0].Loc)
	assert.Equal(t, "https://example.com/posts", sitemap.URLs[1].Loc)
	assert.Equal(t, "https://example.com/posts/a-post", sitemap.URLs[2].Loc)
	assert.Equal(t, "https://example.com/categories/a-category", sitemap.URLs[3].Loc)
	assert.Equal(t, "https://example.com/tags/a-tag", sitemap.URLs[4].Loc)
	assert.Equal(t, "https://example.com/a-page", sitemap.URLs[5].Loc)

	// Priorities per surface.
	assert.Equal(t, "1.0", sitemap.URLs[0].Priority)
	assert.Equal(t, "0.8", sitemap.URLs[1].Priority)
	assert.Equal(t, "0.7", sitemap.URLs[2].Priority)
	assert.Equal(t, "0.6", sitemap.URLs[3].Priority)
	assert.Equal(t, "0.5", sitemap.URLs[4].Priority)
	assert.Equal(t, "0.6", sitemap.URLs[5].Priority)

	// Every entry carries a last-modified date; category and tag entries
	// use the build date, content entries their own modified timestamp.
	for _, entry := range sitemap.URLs {
		assert.NotEmpty(t, entry.LastMod, entry.Loc)
	}
	assert.Equal(t, "2024-03-20", sitemap.URLs[3].LastMod)
	assert.Equal(t, "2024-03-20", sitemap.URLs[4].LastMod)
}
