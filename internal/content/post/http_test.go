package post

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(repo *fakeRepository) *Handler {
	return NewHandler(newTestService(repo), "vi-VN")
}

/*
TestHandler_GetPost exercises the detail route end to end through a fake
store: the success envelope, the derived metrics, and the not-found
envelope for missing and malformed slugs.
*/
func TestHandler_GetPost(t *testing.T) {
	known := &Post{
		Index: Index{
			ID:   1,
			Slug: "hello-hanoi",
			Date: time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC),
		},
		Content: "<p>" + strings.Repeat("word ", 250) + "</p>",
	}
	repo := &fakeRepository{bySlug: map[string]*Post{"hello-hanoi": known}}
	handler := newTestHandler(repo)

	t.Run("found", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/hello-hanoi", nil)
		handler.Routes().ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var envelope struct {
			Data struct {
				Slug        string `json:"slug"`
				ReadingTime int    `json:"reading_time"`
				DisplayDate string `json:"display_date"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

		assert.Equal(t, "hello-hanoi", envelope.Data.Slug)
		assert.Equal(t, 2, envelope.Data.ReadingTime)
		assert.Equal(t, "15 tháng 3, 2024", envelope.Data.DisplayDate)
	})

	t.Run("missing_slug_is_404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/no-such-post", nil)
		handler.Routes().ServeHTTP(recorder, request)

		require.Equal(t, http.StatusNotFound, recorder.Code)

		var envelope struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, "NOT_FOUND", envelope.Code)
	})

	t.Run("malformed_slug_is_404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/Definitely%20Wrong", nil)
		handler.Routes().ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

/*
TestHandler_ListPosts verifies the paginated envelope shape and the
query-parameter clamping on the listing route.
*/
func TestHandler_ListPosts(t *testing.T) {
	published := make([]Index, 5)
	for i := range published {
		published[i] = Index{ID: i + 1, Slug: "post"}
	}
	repo := &fakeRepository{published: published}
	handler := newTestHandler(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/?page=1&limit=5", nil)
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	assert.Len(t, envelope.Data, 5)
	assert.Equal(t, 1, envelope.Meta.Page)
	assert.Equal(t, 5, envelope.Meta.Limit)
	assert.Equal(t, 5, envelope.Meta.Total)
	assert.Equal(t, 1, envelope.Meta.TotalPages)
}

/*
TestHandler_Archive verifies the calendar bounds on the archive routes:
segments naming no calendar position resolve to 404, valid ones to the
post listing.
*/
func TestHandler_Archive(t *testing.T) {
	repo := &fakeRepository{published: []Index{{ID: 1, Slug: "hello"}}}
	handler := newTestHandler(repo)

	router := chi.NewRouter()
	router.Get("/archive/{year}", handler.ArchiveYear)
	router.Get("/archive/{year}/{month}", handler.ArchiveMonth)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"year", "/archive/2024", http.StatusOK},
		{"year_month", "/archive/2024/3", http.StatusOK},
		{"month_zero", "/archive/2024/0", http.StatusNotFound},
		{"month_thirteen", "/archive/2024/13", http.StatusNotFound},
		{"year_out_of_range", "/archive/10000", http.StatusNotFound},
		{"non_numeric_year", "/archive/twenty", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.code, recorder.Code)
		})
	}
}

/*
TestHandler_Search verifies the search route: an empty query yields an
empty data array without store traffic.
*/
func TestHandler_Search(t *testing.T) {
	repo := &fakeRepository{}
	handler := newTestHandler(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/search?q=", nil)

	router := http.HandlerFunc(handler.Search)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotNil(t, envelope.Data)
	assert.Empty(t, envelope.Data)
	assert.Equal(t, 0, repo.searchCalls)
}
