package taxonomy

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

// ListCategories handles GET /api/v1/categories.
func (handler *Handler) ListCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.Categories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

// ListTags handles GET /api/v1/tags.
func (handler *Handler) ListTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.Tags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}
