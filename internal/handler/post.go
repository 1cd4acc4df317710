package handler

import (
	"context"
	"net/http"

	"github.com/inkline/blog/api/internal/middleware"
	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/pagination"
	"github.com/inkline/blog/api/internal/service"
)

// PostService defines the post operations the handler depends on
type PostService interface {
	Create(ctx context.Context, req service.CreatePostRequest, authorID string) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string, page, limit int) (pagination.Page[*model.Post], error)
}

// PostHandler handles post endpoints
type PostHandler struct {
	postService PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// CreatePostRequest represents the post creation request body
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create handles POST /v1/posts. The author is always the authenticated
// user; any author field in the body is ignored by the schema.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	post, err := h.postService.Create(r.Context(), service.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	}, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, post, map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

// Get handles GET /v1/posts/{postId}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")
	if postID == "" {
		WriteError(w, model.NewBadRequestError("post id is required"))
		return
	}

	post, err := h.postService.GetByID(r.Context(), postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, post, nil)
}

// ListByAuthor handles GET /v1/authors/{authorId}/posts
func (h *PostHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := r.PathValue("authorId")
	if authorID == "" {
		WriteError(w, model.NewBadRequestError("author id is required"))
		return
	}

	page, limit, pd := pageParams(r)
	if pd != nil {
		WriteError(w, pd)
		return
	}

	result, err := h.postService.ListByAuthor(r.Context(), authorID, page, limit)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WritePage(w, result)
}
