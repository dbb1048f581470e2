package author

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/platform/respond"
)

// PostLister is the slice of the post service the author routes need.
type PostLister interface {
	PostsByAuthor(ctx context.Context, authorID int) ([]post.Index, error)
}

type Handler struct {
	service *Service
	posts   PostLister
}

func NewHandler(service *Service, posts PostLister) *Handler {
	return &Handler{service: service, posts: posts}
}

// Routes returns the router for the /authors resource.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listAuthors)
	router.Get("/{slug}", handler.getAuthor)
	router.Get("/{slug}/posts", handler.authorPosts)
	return router
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.AllAuthors(request.Context()))
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.AuthorBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) authorPosts(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.AuthorBySlug(request.Context(), chi.URLParam(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	posts, err := handler.posts.PostsByAuthor(request.Context(), found.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}
