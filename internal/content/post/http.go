package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hientensai/blogapi/internal/platform/apperr"
	"github.com/hientensai/blogapi/internal/platform/respond"
	"github.com/hientensai/blogapi/internal/platform/validate"
	"github.com/hientensai/blogapi/pkg/datefmt"
	"github.com/hientensai/blogapi/pkg/pagination"
	"github.com/hientensai/blogapi/pkg/readingtime"
)

type Handler struct {
	service *Service
	locale  string
}

func NewHandler(service *Service, locale string) *Handler {
	return &Handler{service: service, locale: locale}
}

// Routes returns the router for the /posts resource.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPosts)
	router.Get("/recent", handler.recentPosts)
	router.Get("/{slug}", handler.getPost)
	router.Get("/{slug}/related", handler.relatedPosts)
	return router
}

// detailResponse decorates the full projection with the derived metrics
// consumed by the detail view.
type detailResponse struct {
	*Post
	ReadingTime int    `json:"reading_time"`
	DisplayDate string `json:"display_date"`
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	result, err := handler.service.PaginatedPosts(request.Context(), params.Page, params.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, result.Posts, pagination.NewMeta(result.CurrentPage, params.Limit, result.Total))
}

func (handler *Handler) recentPosts(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.RecentPosts(request.Context(), queryLimit(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.PostBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detailResponse{
		Post:        found,
		ReadingTime: readingtime.Estimate(found.Content),
		DisplayDate: datefmt.Long(found.Date, handler.locale),
	})
}

func (handler *Handler) relatedPosts(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.PostBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	categoryIDs := make([]int, 0, len(found.Categories))
	for _, category := range found.Categories {
		categoryIDs = append(categoryIDs, category.ID)
	}
	tagIDs := make([]int, 0, len(found.Tags))
	for _, tag := range found.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	related, err := handler.service.RelatedPosts(request.Context(), found.ID, categoryIDs, tagIDs, queryLimit(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, related)
}

// ByCategory handles GET /api/v1/categories/{slug}/posts.
func (handler *Handler) ByCategory(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.PostsByCategory(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

// ByTag handles GET /api/v1/tags/{slug}/posts.
func (handler *Handler) ByTag(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.PostsByTag(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

// ArchiveIndex handles GET /api/v1/archive.
func (handler *Handler) ArchiveIndex(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.ArchiveDates(request.Context()))
}

// ArchiveYear handles GET /api/v1/archive/{year}.
func (handler *Handler) ArchiveYear(writer http.ResponseWriter, request *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(request, "year"))
	if err != nil || archiveParams(year, 1).HasErrors() {
		respond.Error(writer, request, apperr.NotFound("Archive"))
		return
	}

	posts, err := handler.service.PostsByDate(request.Context(), year, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

// ArchiveMonth handles GET /api/v1/archive/{year}/{month}.
func (handler *Handler) ArchiveMonth(writer http.ResponseWriter, request *http.Request) {
	year, yearErr := strconv.Atoi(chi.URLParam(request, "year"))
	month, monthErr := strconv.Atoi(chi.URLParam(request, "month"))
	if yearErr != nil || monthErr != nil || archiveParams(year, month).HasErrors() {
		respond.Error(writer, request, apperr.NotFound("Archive"))
		return
	}

	posts, err := handler.service.PostsByDate(request.Context(), year, month)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

// Search handles GET /api/v1/search?q=&limit=.
func (handler *Handler) Search(writer http.ResponseWriter, request *http.Request) {
	posts, err := handler.service.SearchPosts(request.Context(), request.URL.Query().Get("q"), queryLimit(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

// archiveParams checks archive path segments against the calendar. Values
// outside it name no resource, so callers map failures to not-found rather
// than a validation error.
func archiveParams(year, month int) *validate.Validator {
	v := &validate.Validator{}
	return v.Range("year", year, 1970, 9999).Range("month", month, 1, 12)
}

// queryLimit parses the optional "limit" query parameter; 0 means "use the
// operation default", which each service method applies itself.
func queryLimit(request *http.Request) int {
	raw := request.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0
	}
	if limit > pagination.MaxLimit {
		return pagination.MaxLimit
	}
	return limit
}
