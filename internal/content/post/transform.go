package post

import (
	"time"

	"github.com/hientensai/blogapi/internal/content/taxonomy"
)

// Raw relational rows as scanned from the store, before normalization.
// Optional text columns scan into pointers so that absent values stay
// distinguishable from empty strings.

type indexRow struct {
	ID               int
	Slug             string
	Title            string
	Excerpt          *string
	Date             time.Time
	Modified         time.Time
	FeaturedImageURL *string
	FeaturedImageID  *int
}

type postRow struct {
	indexRow
	Content       string
	AuthorID      int
	Status        string
	CommentStatus string
	OriginalLink  *string
	Format        *string
}

type imageRow struct {
	OriginalURL string
	CleanURL    *string
	AltText     *string
	Width       *int
	Height      *int
}

// buildIndex maps a raw row into the index projection. Category and tag
// slices start empty, never nil; the store attaches memberships afterwards.
func buildIndex(row indexRow) Index {
	index := Index{
		ID:         row.ID,
		Slug:       row.Slug,
		Title:      row.Title,
		Date:       row.Date,
		Modified:   row.Modified,
		Categories: []taxonomy.Category{},
		Tags:       []taxonomy.Tag{},
	}

	if row.Excerpt != nil {
		index.Excerpt = *row.Excerpt
	}

	if row.FeaturedImageURL != nil {
		image := &FeaturedImage{
			URL:      *row.FeaturedImageURL,
			Original: *row.FeaturedImageURL,
		}
		if row.FeaturedImageID != nil {
			image.ID = *row.FeaturedImageID
		}
		index.FeaturedImage = image
	}

	return index
}

// buildPost maps a raw row plus its embedded image rows into the full
// projection.
func buildPost(row postRow, images []imageRow) Post {
	post := Post{
		Index:         buildIndex(row.indexRow),
		Content:       row.Content,
		AuthorID:      row.AuthorID,
		Status:        row.Status,
		CommentStatus: row.CommentStatus,
		Images:        make([]Image, 0, len(images)),
	}

	for _, img := range images {
		post.Images = append(post.Images, buildImage(img))
	}

	if row.OriginalLink != nil {
		post.Meta.OriginalLink = *row.OriginalLink
	}

	post.Meta.Format = "standard"
	if row.Format != nil {
		post.Meta.Format = *row.Format
	}

	return post
}

// buildImage normalizes one embedded image row. Clean falls back to the
// original URL when no cleaned variant exists.
func buildImage(row imageRow) Image {
	image := Image{
		Original: row.OriginalURL,
		Clean:    row.OriginalURL,
		Width:    row.Width,
		Height:   row.Height,
	}

	if row.CleanURL != nil {
		image.Clean = *row.CleanURL
	}

	if row.AltText != nil {
		image.Alt = *row.AltText
	}

	return image
}
