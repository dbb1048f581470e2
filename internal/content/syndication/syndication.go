// Package syndication renders the machine-readable surfaces of the site:
// the RSS 2.0 feed, the XML sitemap, and robots.txt.
package syndication

import (
	"context"
	"log/slog"

	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/content/taxonomy"
)

// Site is the public identity rendered into feed and sitemap documents.
type Site struct {
	URL         string
	Title       string
	Description string
	Locale      string
}

// PostSource is the slice of the post service the syndication surfaces need.
type PostSource interface {
	AllPosts(ctx context.Context) ([]post.Index, error)
}

// PageSource is the slice of the page service the sitemap needs.
type PageSource interface {
	AllPages(ctx context.Context) ([]page.Index, error)
}

// TaxonomySource supplies category and tag listings, degraded to empty on
// fault by the taxonomy service itself.
type TaxonomySource interface {
	CategoriesBestEffort(ctx context.Context) []taxonomy.Category
	TagsBestEffort(ctx context.Context) []taxonomy.Tag
}

type Service struct {
	site     Site
	posts    PostSource
	pages    PageSource
	taxonomy TaxonomySource
	logger   *slog.Logger
}

func NewService(site Site, posts PostSource, pages PageSource, tax TaxonomySource, logger *slog.Logger) *Service {
	return &Service{
		site:     site,
		posts:    posts,
		pages:    pages,
		taxonomy: tax,
		logger:   logger,
	}
}
