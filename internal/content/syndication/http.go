package syndication

import (
	"net/http"

	"github.com/hientensai/blogapi/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Feed handles GET /feed.
func (handler *Handler) Feed(writer http.ResponseWriter, request *http.Request) {
	body, err := handler.service.Feed(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, "application/rss+xml; charset=utf-8", body)
}

// Sitemap handles GET /sitemap.xml.
func (handler *Handler) Sitemap(writer http.ResponseWriter, request *http.Request) {
	body, err := handler.service.Sitemap(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.XML(writer, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt.
func (handler *Handler) Robots(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(handler.service.Robots())
}
