package page

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hientensai/blogapi/internal/platform/respond"
	"github.com/hientensai/blogapi/pkg/datefmt"
	"github.com/hientensai/blogapi/pkg/readingtime"
)

type Handler struct {
	service *Service
	locale  string
}

func NewHandler(service *Service, locale string) *Handler {
	return &Handler{service: service, locale: locale}
}

// Routes returns the router for the /pages resource.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listPages)
	router.Get("/{slug}", handler.getPage)
	return router
}

type detailResponse struct {
	*Page
	ReadingTime int    `json:"reading_time"`
	DisplayDate string `json:"display_date"`
}

func (handler *Handler) listPages(writer http.ResponseWriter, request *http.Request) {
	pages, err := handler.service.AllPages(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pages)
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.PageBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detailResponse{
		Page:        found,
		ReadingTime: readingtime.Estimate(found.Content),
		DisplayDate: datefmt.Long(found.Date, handler.locale),
	})
}
