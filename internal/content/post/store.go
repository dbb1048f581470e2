package post

import (
	"context"
	"time"
)

// Repository defines the data access contract for the post domain.
//
// # Visibility
//
// Every listing is filtered to published rows; there is no admin or draft
// surface anywhere in this API. FindBySlug returns dberr.ErrNotFound when no
// published row matches.
type Repository interface {
	// ListPublished returns the full published index, date descending, with
	// joined categories (one parent level) and tags.
	ListPublished(ctx context.Context) ([]Index, error)

	// ListPage returns one page of the published index, date descending.
	ListPage(ctx context.Context, limit, offset int) ([]Index, error)

	// CountPublished returns the number of published posts.
	CountPublished(ctx context.Context) (int, error)

	// FindBySlug returns the full projection of one published post,
	// including its embedded images.
	FindBySlug(ctx context.Context, slug string) (*Post, error)

	// ListByCategory returns published posts belonging to the category with
	// the given slug, date descending.
	ListByCategory(ctx context.Context, slug string) ([]Index, error)

	// ListByTag returns published posts carrying the tag with the given
	// slug, date descending.
	ListByTag(ctx context.Context, slug string) ([]Index, error)

	// ListByDateRange returns published posts dated within [from, to]
	// inclusive, date descending.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Index, error)

	// ListByAuthor returns published posts by the given author, date descending.
	ListByAuthor(ctx context.Context, authorID int) ([]Index, error)

	// ListRelated returns published posts sharing at least one of the given
	// category or tag IDs, excluding postID and blank slugs, date
	// descending, capped at limit.
	ListRelated(ctx context.Context, postID int, categoryIDs, tagIDs []int, limit int) ([]Index, error)

	// ListRecent returns the most recent published posts, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]Index, error)

	// ListRecentExcluding is ListRecent minus the given post and minus rows
	// with blank slugs.
	ListRecentExcluding(ctx context.Context, postID, limit int) ([]Index, error)

	// ListDates returns the publish date of every published post, date
	// descending. Used to derive the archive buckets.
	ListDates(ctx context.Context) ([]time.Time, error)

	// Search returns published posts whose title, excerpt, or content
	// contains the query (case-insensitive), date descending, capped at
	// limit. The query is a raw user string; implementations must treat it
	// as a literal, not a pattern.
	Search(ctx context.Context, query string, limit int) ([]Index, error)
}
