package author_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hientensai/blogapi/internal/content/author"
	"github.com/hientensai/blogapi/internal/platform/apperr"
)

type fakeRepository struct {
	authors []author.Author
	bySlug  map[string]*author.Author
	err     error
}

func (f *fakeRepository) List(ctx context.Context) ([]author.Author, error) {
	return f.authors, f.err
}

func (f *fakeRepository) FindBySlug(ctx context.Context, slug string) (*author.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	found, ok := f.bySlug[slug]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	return found, nil
}

func newTestService(repo *fakeRepository) *author.Service {
	return author.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_AllAuthors verifies the best-effort policy: faults degrade to
an empty, non-nil slice.
*/
func TestService_AllAuthors(t *testing.T) {
	t.Run("healthy_store", func(t *testing.T) {
		repo := &fakeRepository{authors: []author.Author{{ID: 1, Slug: "hien", Name: "Hien"}}}
		service := newTestService(repo)

		authors := service.AllAuthors(context.Background())
		require.Len(t, authors, 1)
		assert.Equal(t, "hien", authors[0].Slug)
	})

	t.Run("degraded_store", func(t *testing.T) {
		repo := &fakeRepository{err: errors.New("connection reset")}
		service := newTestService(repo)

		authors := service.AllAuthors(context.Background())
		assert.NotNil(t, authors)
		assert.Empty(t, authors)
	})
}

/*
TestService_AuthorBySlug checks the lookup error policy: malformed slugs,
missing rows, and store faults all read as not-found.
*/
func TestService_AuthorBySlug(t *testing.T) {
	known := &author.Author{ID: 1, Slug: "hien", Name: "Hien"}

	tests := []struct {
		name      string
		slug      string
		storeErr  error
		wantFound bool
	}{
		{"found", "hien", nil, true},
		{"missing_row", "ghost", nil, false},
		{"malformed_slug", "Not A Slug!", nil, false},
		{"store_fault", "hien", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{
				bySlug: map[string]*author.Author{"hien": known},
				err:    tt.storeErr,
			}
			service := newTestService(repo)

			found, err := service.AuthorBySlug(context.Background(), tt.slug)

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
