package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkline/blog/api/internal/cache"
	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/pagination"
)

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Post, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

// PostService handles posts with a cache-aside snapshot cache in front of
// single-post reads. The store is authoritative; every cache operation is
// best-effort and a cache failure never fails the call.
type PostService struct {
	repo  PostRepository
	cache cache.Cache
}

// PostServiceConfig holds configuration for the post service
type PostServiceConfig struct {
	Repo  PostRepository
	Cache cache.Cache
}

// NewPostService creates a new post service
func NewPostService(cfg PostServiceConfig) *PostService {
	return &PostService{
		repo:  cfg.Repo,
		cache: cfg.Cache,
	}
}

// CreatePostRequest represents a post creation request
type CreatePostRequest struct {
	Title   string
	Content string
}

// Create inserts a post for the given author and writes its snapshot
// through to the cache. Success is defined solely by the store insert; a
// failed cache write is logged and swallowed.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest, authorID string) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	post := &model.Post{
		Title:    title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.cachePost(ctx, post)
	return post, nil
}

// GetByID returns a post by id. A cache hit is returned without consulting
// the store; posts are immutable, so the snapshot cannot be stale. On a
// miss the store is queried and the result written back to the cache.
func (s *PostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if raw, ok := s.cachedPost(ctx, id); ok {
		return raw, nil
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	s.cachePost(ctx, post)
	return post, nil
}

// ListByAuthor returns one page of an author's posts with navigation
// metadata.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string, page, limit int) (pagination.Page[*model.Post], error) {
	page, limit = pagination.Clamp(page, limit)

	posts, err := s.repo.ListByAuthor(ctx, authorID, limit, pagination.Offset(page, limit))
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}
	count, err := s.repo.CountByAuthor(ctx, authorID)
	if err != nil {
		return pagination.Page[*model.Post]{}, err
	}

	return pagination.Paginate(posts, count, page, limit), nil
}

func postCacheKey(id string) string {
	return "post:" + id
}

// cachedPost attempts the cache lookup. Any failure (connection error,
// miss, undecodable entry) reports a miss and lets the caller fall back
// to the store.
func (s *PostService) cachedPost(ctx context.Context, id string) (*model.Post, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, postCacheKey(id))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("post cache read failed", slog.String("post_id", id), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var post model.Post
	if err := json.Unmarshal([]byte(raw), &post); err != nil {
		slog.Warn("post cache entry undecodable", slog.String("post_id", id), slog.String("error", err.Error()))
		return nil, false
	}
	return &post, true
}

// cachePost writes a post snapshot to the cache, best-effort.
func (s *PostService) cachePost(ctx context.Context, post *model.Post) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(post)
	if err != nil {
		slog.Warn("post cache encode failed", slog.String("post_id", post.ID), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, postCacheKey(post.ID), string(data)); err != nil {
		slog.Warn("post cache write failed", slog.String("post_id", post.ID), slog.String("error", err.Error()))
	}
}
