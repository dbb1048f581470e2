package author

import "context"

// Repository defines the data access contract for authors.
type Repository interface {
	// List returns all authors ordered by name ascending.
	List(ctx context.Context) ([]Author, error)

	// FindBySlug returns one author. Returns dberr.ErrNotFound when no row
	// matches.
	FindBySlug(ctx context.Context, slug string) (*Author, error)
}
