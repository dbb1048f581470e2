package taxonomy

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Categories returns every category, name ascending. Faults propagate to the
// caller; this is a primary read for the category browse page.
func (service *Service) Categories(ctx context.Context) ([]Category, error) {
	return service.repo.ListCategories(ctx)
}

// Tags returns every tag, name ascending. Faults propagate.
func (service *Service) Tags(ctx context.Context) ([]Tag, error) {
	return service.repo.ListTags(ctx)
}

// CategoriesBestEffort degrades to an empty list on a store fault so that
// navigation and sitemap rendering can proceed without categories.
func (service *Service) CategoriesBestEffort(ctx context.Context) []Category {
	categories, err := service.repo.ListCategories(ctx)
	if err != nil {
		service.logger.Warn("category_list_degraded", slog.Any("error", err))
		return []Category{}
	}
	return categories
}

// TagsBestEffort degrades to an empty list on a store fault.
func (service *Service) TagsBestEffort(ctx context.Context) []Tag {
	tags, err := service.repo.ListTags(ctx)
	if err != nil {
		service.logger.Warn("tag_list_degraded", slog.Any("error", err))
		return []Tag{}
	}
	return tags
}
