package page

import (
	"time"

	"github.com/hientensai/blogapi/internal/content/post"
)

type indexRow struct {
	ID        int
	Slug      string
	Title     string
	Date      time.Time
	Modified  time.Time
	ParentID  *int
	MenuOrder int
}

type pageRow struct {
	indexRow
	Content          string
	AuthorID         int
	Status           string
	FeaturedImageURL *string
	FeaturedImageID  *int
	OriginalLink     *string
	Template         *string
}

type imageRow struct {
	OriginalURL string
	CleanURL    *string
	AltText     *string
	Width       *int
	Height      *int
}

// buildIndex maps a raw row into the index projection. A missing parent
// reference normalizes to 0 (root).
func buildIndex(row indexRow) Index {
	index := Index{
		ID:        row.ID,
		Slug:      row.Slug,
		Title:     row.Title,
		Date:      row.Date,
		Modified:  row.Modified,
		MenuOrder: row.MenuOrder,
	}

	if row.ParentID != nil {
		index.Parent = *row.ParentID
	}

	return index
}

// buildPage maps a raw row plus its embedded image rows into the full
// projection.
func buildPage(row pageRow, images []imageRow) Page {
	p := Page{
		Index:    buildIndex(row.indexRow),
		Content:  row.Content,
		AuthorID: row.AuthorID,
		Status:   row.Status,
		Images:   make([]post.Image, 0, len(images)),
	}

	if row.FeaturedImageURL != nil {
		image := &post.FeaturedImage{
			URL:      *row.FeaturedImageURL,
			Original: *row.FeaturedImageURL,
		}
		if row.FeaturedImageID != nil {
			image.ID = *row.FeaturedImageID
		}
		p.FeaturedImage = image
	}

	for _, img := range images {
		entry := post.Image{
			Original: img.OriginalURL,
			Clean:    img.OriginalURL,
			Width:    img.Width,
			Height:   img.Height,
		}
		if img.CleanURL != nil {
			entry.Clean = *img.CleanURL
		}
		if img.AltText != nil {
			entry.Alt = *img.AltText
		}
		p.Images = append(p.Images, entry)
	}

	if row.OriginalLink != nil {
		p.Meta.OriginalLink = *row.OriginalLink
	}

	p.Meta.Template = "default"
	if row.Template != nil {
		p.Meta.Template = *row.Template
	}

	return p
}
