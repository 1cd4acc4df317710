package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkline/blog/api/internal/database"
	"github.com/inkline/blog/api/internal/model"
)

// CommentRepository handles comment data access
type CommentRepository struct {
	db database.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db database.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment and fills in its generated id and
// timestamps. The caller is responsible for having resolved the post id
// to an existing post first.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	id := uuid.NewString()

	query := `
		INSERT INTO comments (id, content, post_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, id, comment.Content, comment.PostID, comment.UserID).
		Scan(&comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: create comment: %v", database.ErrQuery, err)
	}

	comment.ID = id
	return nil
}
