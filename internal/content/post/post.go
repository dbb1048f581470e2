package post

import (
	"time"

	"github.com/hientensai/blogapi/internal/content/taxonomy"
)

// FeaturedImage is the nullable cover image triple carried by a post.
type FeaturedImage struct {
	URL      string `json:"url"`
	Original string `json:"original"`
	ID       int    `json:"id"`
}

// Image is one embedded content image. Clean falls back to Original when no
// cleaned variant was stored.
type Image struct {
	Original string `json:"original"`
	Clean    string `json:"clean"`
	Alt      string `json:"alt"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

// Meta is the free-form metadata record of a post.
type Meta struct {
	OriginalLink string `json:"original_link"`
	Format       string `json:"format"`
}

// Index is the lightweight projection of a post used in listings.
//
// Categories and Tags are always non-nil; a post without either carries an
// empty slice, never null.
type Index struct {
	ID            int                 `json:"id"`
	Slug          string              `json:"slug"`
	Title         string              `json:"title"`
	Excerpt       string              `json:"excerpt"`
	Date          time.Time           `json:"date"`
	Modified      time.Time           `json:"modified"`
	FeaturedImage *FeaturedImage      `json:"featured_image"`
	Categories    []taxonomy.Category `json:"categories"`
	Tags          []taxonomy.Tag      `json:"tags"`
}

// Post is the full projection used on detail views: the index shape plus the
// rendered body, authorship, and embedded image records.
type Post struct {
	Index

	Content       string  `json:"content"`
	AuthorID      int     `json:"author_id"`
	Status        string  `json:"status"`
	CommentStatus string  `json:"comment_status"`
	Images        []Image `json:"images"`
	Meta          Meta    `json:"meta"`
}

// ArchiveBucket is one (year) or (year, month) grouping of published posts.
// Month is nil for the whole-year bucket.
type ArchiveBucket struct {
	Year  int  `json:"year"`
	Month *int `json:"month,omitempty"`
	Count int  `json:"count"`
}

// PageResult is the outcome of a paginated listing.
type PageResult struct {
	Posts       []Index `json:"posts"`
	Total       int     `json:"total"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
}
