package author

import (
	"context"
	"log/slog"

	"github.com/hientensai/blogapi/internal/platform/apperr"
	"github.com/hientensai/blogapi/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// AllAuthors returns every author. A store fault degrades to an empty
// list so author boxes never take down the surrounding view.
func (service *Service) AllAuthors(ctx context.Context) []Author {
	authors, err := service.repo.List(ctx)
	if err != nil {
		service.logger.Warn("author_list_degraded", slog.Any("error", err))
		return []Author{}
	}
	return authors
}

// AuthorBySlug returns one author profile. Any fault surfaces as a
// not-found outcome.
func (service *Service) AuthorBySlug(ctx context.Context, authorSlug string) (*Author, error) {
	if !validate.IsSlug(authorSlug) {
		return nil, apperr.NotFound("Author")
	}

	found, err := service.repo.FindBySlug(ctx, authorSlug)
	if err != nil {
		if !apperr.IsNotFound(err) {
			service.logger.Warn("author_lookup_degraded",
				slog.String("slug", authorSlug),
				slog.Any("error", err),
			)
		}
		return nil, apperr.NotFound("Author")
	}

	return found, nil
}
