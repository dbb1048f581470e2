package post

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hientensai/blogapi/internal/content/memo"
	"github.com/hientensai/blogapi/internal/platform/apperr"
	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/internal/platform/validate"
	"github.com/hientensai/blogapi/pkg/pagination"
	"github.com/hientensai/blogapi/pkg/slug"
)

// Service implements the read operations of the post domain on top of a
// [Repository], including the process-lifetime index memoization.
//
// # Error Policy
//
// Slug lookups absorb every fault into a not-found outcome. Archive dates
// degrade to an empty collection. Every other listing propagates faults to
// the caller.
type Service struct {
	repo   Repository
	index  memo.Cell[[]Index]
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AllPosts returns the published index, date descending. The first call per
// process queries the store; later calls return the memoized snapshot.
func (service *Service) AllPosts(ctx context.Context) ([]Index, error) {
	return service.index.Get(ctx, service.repo.ListPublished)
}

// AllPostSlugs returns the slug of every published post, blank slugs
// filtered out.
func (service *Service) AllPostSlugs(ctx context.Context) ([]string, error) {
	posts, err := service.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(posts))
	for _, p := range posts {
		if slug.IsBlank(p.Slug) {
			continue
		}
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}

// InvalidateIndex clears the memoized index so the next read reloads it.
// Exposed for tests and operational tooling; the running server never calls it.
func (service *Service) InvalidateIndex() {
	service.index.Invalidate()
}

// PaginatedPosts returns one page of the published index.
//
// A page below 1 still computes a well-defined result (offset clamps to 0)
// rather than failing.
func (service *Service) PaginatedPosts(ctx context.Context, page, limit int) (*PageResult, error) {
	if limit < 1 {
		limit = pagination.DefaultLimit
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * limit
	}

	posts, err := service.repo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := service.repo.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Posts:       posts,
		Total:       total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

// PostBySlug returns the full projection of one published post.
//
// Any fault — malformed slug, missing row, or a store error — surfaces as a
// not-found outcome so the detail read path stays resilient.
func (service *Service) PostBySlug(ctx context.Context, postSlug string) (*Post, error) {
	if !validate.IsSlug(postSlug) {
		return nil, apperr.NotFound("Post")
	}

	found, err := service.repo.FindBySlug(ctx, postSlug)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.Warn("post_lookup_degraded",
				slog.String("slug", postSlug),
				slog.Any("error", err),
			)
		}
		return nil, apperr.NotFound("Post")
	}

	return found, nil
}

// PostsByCategory returns published posts in the given category, date
// descending. A malformed slug is a not-found outcome; store faults propagate.
func (service *Service) PostsByCategory(ctx context.Context, categorySlug string) ([]Index, error) {
	if !validate.IsSlug(categorySlug) {
		return nil, apperr.NotFound("Category")
	}
	return service.repo.ListByCategory(ctx, categorySlug)
}

// PostsByTag returns published posts carrying the given tag, date descending.
func (service *Service) PostsByTag(ctx context.Context, tagSlug string) ([]Index, error) {
	if !validate.IsSlug(tagSlug) {
		return nil, apperr.NotFound("Tag")
	}
	return service.repo.ListByTag(ctx, tagSlug)
}

// PostsByAuthor returns published posts by the given author, date descending.
func (service *Service) PostsByAuthor(ctx context.Context, authorID int) ([]Index, error) {
	return service.repo.ListByAuthor(ctx, authorID)
}

// PostsByDate returns published posts within the given year, or the given
// month when month is non-zero. The range is inclusive of the first and last
// instant, with month lengths taken from the calendar (leap years included).
func (service *Service) PostsByDate(ctx context.Context, year, month int) ([]Index, error) {
	if year < 1 || month < 0 || month > 12 {
		return nil, apperr.NotFound("Archive")
	}

	var from, to time.Time
	if month == 0 {
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	} else {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	return service.repo.ListByDateRange(ctx, from, to)
}

// ArchiveDates returns the (year) and (year, month) buckets of the published
// archive with post counts, year descending and months descending within
// each year. Best-effort: a store fault degrades to an empty slice.
func (service *Service) ArchiveDates(ctx context.Context) []ArchiveBucket {
	dates, err := service.repo.ListDates(ctx)
	if err != nil {
		service.logger.Warn("archive_dates_degraded", slog.Any("error", err))
		return []ArchiveBucket{}
	}

	yearCounts := map[int]int{}
	monthCounts := map[int]map[int]int{}
	for _, date := range dates {
		year, month := date.Year(), int(date.Month())
		yearCounts[year]++
		if monthCounts[year] == nil {
			monthCounts[year] = map[int]int{}
		}
		monthCounts[year][month]++
	}

	years := make([]int, 0, len(yearCounts))
	for year := range yearCounts {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	buckets := []ArchiveBucket{}
	for _, year := range years {
		buckets = append(buckets, ArchiveBucket{Year: year, Count: yearCounts[year]})

		months := make([]int, 0, len(monthCounts[year]))
		for month := range monthCounts[year] {
			months = append(months, month)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(months)))

		for _, month := range months {
			m := month
			buckets = append(buckets, ArchiveBucket{Year: year, Month: &m, Count: monthCounts[year][month]})
		}
	}

	return buckets
}

// RelatedPosts returns up to limit published posts sharing a category or tag
// with the given identifiers, date descending, never including the post
// itself or a blank-slug row. With no categories and no tags it falls back
// to the most recent posts under the same exclusions.
func (service *Service) RelatedPosts(ctx context.Context, postID int, categoryIDs, tagIDs []int, limit int) ([]Index, error) {
	if limit < 1 {
		limit = constants.DefaultRelatedLimit
	}

	var posts []Index
	var err error
	if len(categoryIDs) == 0 && len(tagIDs) == 0 {
		posts, err = service.repo.ListRecentExcluding(ctx, postID, limit)
	} else {
		posts, err = service.repo.ListRelated(ctx, postID, categoryIDs, tagIDs, limit)
	}
	if err != nil {
		return nil, err
	}

	// Blank-slug rows cannot be linked; drop them whatever the repository
	// returned.
	filtered := make([]Index, 0, len(posts))
	for _, p := range posts {
		if p.ID == postID || slug.IsBlank(p.Slug) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered, nil
}

// RecentPosts returns the most recent published posts, capped at limit.
func (service *Service) RecentPosts(ctx context.Context, limit int) ([]Index, error) {
	if limit < 1 {
		limit = constants.DefaultRecentLimit
	}
	return service.repo.ListRecent(ctx, limit)
}

// SearchPosts returns published posts matching the query, most recent first.
// A blank or whitespace-only query returns an empty result without touching
// the store.
func (service *Service) SearchPosts(ctx context.Context, query string, limit int) ([]Index, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []Index{}, nil
	}

	if limit < 1 {
		limit = constants.DefaultSearchLimit
	}

	return service.repo.Search(ctx, trimmed, limit)
}
