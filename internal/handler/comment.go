package handler

import (
	"context"
	"net/http"

	"github.com/inkline/blog/api/internal/middleware"
	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/service"
)

// CommentService defines the comment operations the handler depends on
type CommentService interface {
	Create(ctx context.Context, req service.CreateCommentRequest, postID, userID string) (*model.Comment, error)
}

// CommentHandler handles comment endpoints
type CommentHandler struct {
	commentService CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateCommentRequest represents the comment creation request body
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Create handles POST /v1/posts/{postId}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	postID := r.PathValue("postId")
	if postID == "" {
		WriteError(w, model.NewBadRequestError("post id is required"))
		return
	}

	var req CreateCommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.commentService.Create(r.Context(), service.CreateCommentRequest{
		Content: req.Content,
	}, postID, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, comment, map[string]string{
		"post": "/v1/posts/" + postID,
	})
}
