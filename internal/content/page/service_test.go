package page_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hientensai/blogapi/internal/content/page"
	"github.com/hientensai/blogapi/internal/platform/apperr"
)

type fakeRepository struct {
	published []page.Index
	bySlug    map[string]*page.Page
	err       error

	listCalls int
}

func (f *fakeRepository) ListPublished(ctx context.Context) ([]page.Index, error) {
	f.listCalls++
	return f.published, f.err
}

func (f *fakeRepository) FindBySlug(ctx context.Context, slug string) (*page.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
	found, ok := f.bySlug[slug]
	if !ok {
		return nil, apperr.NotFound("Page")
	}
	return found, nil
}

func newTestService(repo *fakeRepository) *page.Service {
	return page.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_AllPages_Memoized verifies the single store read per process
and the reload after invalidation.
*/
func TestService_AllPages_Memoized(t *testing.T) {
	repo := &fakeRepository{published: []page.Index{{ID: 1, Slug: "about"}}}
	service := newTestService(repo)

	_, err := service.AllPages(context.Background())
	require.NoError(t, err)
	_, err = service.AllPages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	service.InvalidateIndex()
	_, err = service.AllPages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

/*
TestService_AllPageSlugs filters blank slugs out of the listing.
*/
func TestService_AllPageSlugs(t *testing.T) {
	repo := &fakeRepository{published: []page.Index{
		{ID: 1, Slug: "about"},
		{ID: 2, Slug: ""},
		{ID: 3, Slug: "contact"},
	}}
	service := newTestService(repo)

	slugs, err := service.AllPageSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "contact"}, slugs)
}

/*
TestService_PageBySlug checks the lookup error policy shared with posts:
malformed slugs, missing rows, and store faults all read as not-found.
*/
func TestService_PageBySlug(t *testing.T) {
	known := &page.Page{Index: page.Index{ID: 5, Slug: "about"}}

	tests := []struct {
		name      string
		slug      string
		storeErr  error
		wantFound bool
	}{
		{"found", "about", nil, true},
		{"missing_row", "nope", nil, false},
		{"malformed_slug", "Not A Slug!", nil, false},
		{"store_fault", "about", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{
				bySlug: map[string]*page.Page{"about": known},
				err:    tt.storeErr,
			}
			service := newTestService(repo)

			found, err := service.PageBySlug(context.Background(), tt.slug)

			if tt.wantFound {
				require.NoError(t, err)
				assert.Equal(t, known, found)
			} else {
				require.Error(t, err)
				assert.True(t, apperr.IsNotFound(err))
			}
		})
	}
}
