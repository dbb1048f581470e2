package syndication

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"

	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/content/taxonomy"
	"github.com/hientensai/blogapi/pkg/slug"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders the XML sitemap. The post index is authoritative; page
// and taxonomy listings degrade to empty sections on fault.
func (service *Service) Sitemap(ctx context.Context) ([]byte, error) {
	posts, err := service.posts.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	pages, err := service.pages.AllPages(ctx)
	if err != nil {
		service.logger.Warn("sitemap_pages_degraded", slog.Any("error", err))
		pages = nil
	}

	categories := service.taxonomy.CategoriesBestEffort(ctx)
	tags := service.taxonomy.TagsBestEffort(ctx)

	sitemap := buildSitemap(service.site, posts, pages, categories, tags, time.Now())
	return marshalDocument(sitemap)
}

func buildSitemap(site Site, posts []post.Index, pages []page.Index, categories []taxonomy.Category, tags []taxonomy.Tag, now time.Time) sitemapURLSet {
	today := now.UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: site.URL, LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: site.URL + "/posts", LastMod: today, ChangeFreq: "daily", Priority: "0.8"},
	}

	for _, p := range posts {
		if slug.IsBlank(p.Slug) {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/posts/%s", site.URL, p.Slug),
			LastMod:    p.Modified.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	for _, category := range categories {
		if slug.IsBlank(category.Slug) {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/categories/%s", site.URL, category.Slug),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	for _, tag := range tags {
		if slug.IsBlank(tag.Slug) {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/tags/%s", site.URL, tag.Slug),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	for _, p := range pages {
		if slug.IsBlank(p.Slug) {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/%s", site.URL, p.Slug),
			LastMod:    p.Modified.UTC().Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.6",
		})
	}

	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}
