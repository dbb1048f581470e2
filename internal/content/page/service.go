package page

import (
	"context"
	"log/slog"

	"github.com/hientensai/blogapi/internal/content/memo"
	"github.com/hientensai/blogapi/internal/platform/apperr"
	"github.com/hientensai/blogapi/internal/platform/validate"
	"github.com/hientensai/blogapi/pkg/slug"
)

// Service implements the read operations of the page domain, with the same
// process-lifetime index memoization and slug-lookup error policy as posts.
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

// AllPages returns the published page index, menu order ascending. The
// first call per process queries the store; later calls return the
// memoized snapshot.
func (service *Service) AllPages(ctx context.Context) ([]Index, error) {
	return service.index.Get(ctx, service.repo.ListPublished)
}

// AllPageSlugs returns the slug of every published page, blank slugs
// filtered out.
func (service *Service) AllPageSlugs(ctx context.Context) ([]string, error) {
	pages, err := service.AllPages(ctx)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(pages))
	for _, p := range pages {
		if slug.IsBlank(p.Slug) {
			continue
		}
		slugs = append(slugs, p.Slug)
	}
	return slugs, nil
}

// InvalidateIndex clears the memoized index so the next read reloads it.
func (service *Service) InvalidateIndex() {
	service.index.Invalidate()
}

// PageBySlug returns the full projection of one published page. Any fault
// surfaces as a not-found outcome, matching the post lookup policy.
func (service *Service) PageBySlug(ctx context.Context, pageSlug string) (*Page, error) {
	if !validate.IsSlug(pageSlug) {
		return nil, apperr.NotFound("Page")
	}

	found, err := service.repo.FindBySlug(ctx, pageSlug)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.Warn("page_lookup_degraded",
				slog.String("slug", pageSlug),
				slog.Any("error", err),
			)
		}
		return nil, apperr.NotFound("Page")
	}

	return found, nil
}
