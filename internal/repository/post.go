package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/inkline/blog/api/internal/database"
	"github.com/inkline/blog/api/internal/model"
)

// PostRepository handles post data access
type PostRepository struct {
	db database.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db database.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post and fills in its generated id and timestamps.
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	id := uuid.NewString()

	query := `
		INSERT INTO posts (id, title, content, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, id, post.Title, post.Content, post.AuthorID).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: create post: %v", database.ErrQuery, err)
	}

	post.ID = id
	return nil
}

// GetByID retrieves a post by ID. Returns (nil, nil) if absent.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var p model.Post
	err := r.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get post: %v", database.ErrQuery, err)
	}
	return &p, nil
}

// ListByAuthor returns one page of an author's posts, oldest first.
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error) {
	query := `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", database.ErrQuery, err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan post: %v", database.ErrQuery, err)
		}
		posts = append(posts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", database.ErrQuery, err)
	}
	return posts, nil
}

// CountByAuthor returns the total number of posts by an author.
func (r *PostRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM posts WHERE author_id = $1`, authorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: count posts: %v", database.ErrQuery, err)
	}
	return count, nil
}
