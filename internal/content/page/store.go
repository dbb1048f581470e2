package page

import "context"

// Repository defines the data access contract for static pages.
type Repository interface {
	// ListPublished returns the published page index ordered by menu_order
	// ascending.
	ListPublished(ctx context.Context) ([]Index, error)

	// FindBySlug returns the full projection of one published page,
	// including its embedded images. Returns dberr.ErrNotFound when no
	// published row matches.
	FindBySlug(ctx context.Context, slug string) (*Page, error)
}
