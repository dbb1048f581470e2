package page

import (
	"time"

	"github.com/hientensai/blogapi/internal/content/post"
)

// Index is the lightweight projection of a static page used in listings and
// menu construction. Parent is 0 for root pages.
type Index struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Modified  time.Time `json:"modified"`
	Parent    int       `json:"parent"`
	MenuOrder int       `json:"menu_order"`
}

// Meta is the free-form metadata record of a page.
type Meta struct {
	OriginalLink string `json:"original_link"`
	Template     string `json:"template"`
}

// Page is the full projection used on detail views.
type Page struct {
	Index

	Content       string              `json:"content"`
	AuthorID      int                 `json:"author_id"`
	Status        string              `json:"status"`
	FeaturedImage *post.FeaturedImage `json:"featured_image"`
	Images        []post.Image        `json:"images"`
	Meta          Meta                `json:"meta"`
}
