package service

import (
	"context"
	"time"

	"github.com/inkline/blog/api/internal/model"
)

// DefaultTopAuthors is the number of authors returned when the caller does
// not ask for a specific count.
const DefaultTopAuthors = 3

// aggregateTimeout bounds the ranking queries so a slow aggregation cannot
// hold a request open indefinitely.
const aggregateTimeout = 5 * time.Second

// StatsRepository defines the interface for author ranking queries
type StatsRepository interface {
	TopAuthorsByPosts(ctx context.Context, n int) ([]*model.AuthorPostStats, error)
	TopAuthorsWithOwnComment(ctx context.Context, n int) ([]*model.AuthorCommentStats, error)
}

// StatsService exposes the author leaderboards
type StatsService struct {
	repo StatsRepository
}

// StatsServiceConfig holds configuration for the stats service
type StatsServiceConfig struct {
	Repo StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(cfg StatsServiceConfig) *StatsService {
	return &StatsService{repo: cfg.Repo}
}

// TopAuthorsByPosts returns the n most prolific authors, each with the
// title of their latest post and that post's latest comment. Authors with
// zero posts still appear when n exceeds the number of active authors.
func (s *StatsService) TopAuthorsByPosts(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
	if n < 1 {
		return nil, ErrInvalidAuthorCount
	}

	ctx, cancel := context.WithTimeout(ctx, aggregateTimeout)
	defer cancel()

	rows, err := s.repo.TopAuthorsByPosts(ctx, n)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*model.AuthorPostStats{}
	}
	return rows, nil
}

// TopAuthorsWithOwnComment returns the n most prolific authors together
// with the latest comment each of them wrote anywhere on the site.
func (s *StatsService) TopAuthorsWithOwnComment(ctx context.Context, n int) ([]*model.AuthorCommentStats, error) {
	if n < 1 {
		return nil, ErrInvalidAuthorCount
	}

	ctx, cancel := context.WithTimeout(ctx, aggregateTimeout)
	defer cancel()

	rows, err := s.repo.TopAuthorsWithOwnComment(ctx, n)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*model.AuthorCommentStats{}
	}
	return rows, nil
}
