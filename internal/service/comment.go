package service

import (
	"context"
	"strings"

	"github.com/inkline/blog/api/internal/model"
)

// CommentRepository defines the interface for comment storage
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
}

// CommentService handles comments on posts
type CommentService struct {
	repo  CommentRepository
	posts *PostService
}

// CommentServiceConfig holds configuration for the comment service
type CommentServiceConfig struct {
	Repo  CommentRepository
	Posts *PostService
}

// NewCommentService creates a new comment service
func NewCommentService(cfg CommentServiceConfig) *CommentService {
	return &CommentService{
		repo:  cfg.Repo,
		posts: cfg.Posts,
	}
}

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	Content string
}

// Create attaches a comment to an existing post. The post is resolved
// first, through the post service so the lookup shares its cache; nothing
// is inserted when the post does not exist.
func (s *CommentService) Create(ctx context.Context, req CreateCommentRequest, postID, userID string) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content: req.Content,
		PostID:  post.ID,
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
