package taxonomy

import "context"

// Repository defines the data access contract for categories and tags.
//
// # Architecture
//
// The pgx implementation lives alongside in store_postgres.go — the interface
// lives here because the service layer (the consumer) defines what it needs.
type Repository interface {
	// ListCategories returns every category ordered by name ascending,
	// each carrying its single-level parent reference when present.
	ListCategories(ctx context.Context) ([]Category, error)

	// ListTags returns every tag ordered by name ascending.
	ListTags(ctx context.Context) ([]Tag, error)
}
