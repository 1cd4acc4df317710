package repository

import (
	"context"
	"fmt"

	"github.com/inkline/blog/api/internal/database"
	"github.com/inkline/blog/api/internal/model"
)

// StatsRepository computes author ranking aggregates. Each mode is a single
// parameterized round-trip; ranking logic stays in SQL, the result shape is
// a fixed struct.
type StatsRepository struct {
	db database.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Post counts come from a LEFT JOIN off the full user set, so zero-post
// authors rank with count 0 instead of vanishing. "Latest" rows tie-break
// on id DESC when created_at collides; the final ranking tie-breaks on
// author id ASC. Both orderings are part of the contract.

const topAuthorsByPostsQuery = `
WITH post_counts AS (
	SELECT u.id, u.name, count(p.id) AS post_count
	FROM users u
	LEFT JOIN posts p ON p.author_id = u.id
	WHERE u.deleted_at IS NULL
	GROUP BY u.id, u.name
)
SELECT pc.id, pc.name, pc.post_count, lp.title, lc.content
FROM post_counts pc
LEFT JOIN LATERAL (
	SELECT id, title
	FROM posts
	WHERE author_id = pc.id
	ORDER BY created_at DESC, id DESC
	LIMIT 1
) lp ON true
LEFT JOIN LATERAL (
	SELECT content
	FROM comments
	WHERE post_id = lp.id
	ORDER BY created_at DESC, id DESC
	LIMIT 1
) lc ON true
ORDER BY pc.post_count DESC, pc.id ASC
LIMIT $1
`

// TopAuthorsByPosts returns the n highest-ranked authors by post count,
// each joined with their most recent post and that post's most recent
// comment.
func (r *StatsRepository) TopAuthorsByPosts(ctx context.Context, n int) ([]*model.AuthorPostStats, error) {
	rows, err := r.db.Query(ctx, topAuthorsByPostsQuery, n)
	if err != nil {
		return nil, fmt.Errorf("%w: top authors by posts: %v", database.ErrQuery, err)
	}
	defer rows.Close()

	var stats []*model.AuthorPostStats
	for rows.Next() {
		var row model.AuthorPostStats
		if err := rows.Scan(&row.AuthorID, &row.Name, &row.PostCount, &row.LatestPost, &row.LatestComment); err != nil {
			return nil, fmt.Errorf("%w: scan author stats: %v", database.ErrQuery, err)
		}
		stats = append(stats, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: top authors by posts: %v", database.ErrQuery, err)
	}
	return stats, nil
}

const topAuthorsWithOwnCommentQuery = `
WITH post_counts AS (
	SELECT u.id, u.name, count(p.id) AS post_count
	FROM users u
	LEFT JOIN posts p ON p.author_id = u.id
	WHERE u.deleted_at IS NULL
	GROUP BY u.id, u.name
)
SELECT pc.id, pc.name, pc.post_count, lc.content, lc.created_at
FROM post_counts pc
LEFT JOIN LATERAL (
	SELECT content, created_at
	FROM comments
	WHERE user_id = pc.id
	ORDER BY created_at DESC, id DESC
	LIMIT 1
) lc ON true
ORDER BY pc.post_count DESC, pc.id ASC
LIMIT $1
`

// TopAuthorsWithOwnComment returns the n highest-ranked authors by post
// count, each joined with the most recent comment the author wrote,
// comments BY the author, not comments ON the author's posts.
func (r *StatsRepository) TopAuthorsWithOwnComment(ctx context.Context, n int) ([]*model.AuthorCommentStats, error) {
	rows, err := r.db.Query(ctx, topAuthorsWithOwnCommentQuery, n)
	if err != nil {
		return nil, fmt.Errorf("%w: top authors with own comment: %v", database.ErrQuery, err)
	}
	defer rows.Close()

	var stats []*model.AuthorCommentStats
	for rows.Next() {
		var row model.AuthorCommentStats
		if err := rows.Scan(&row.AuthorID, &row.Name, &row.PostCount, &row.LatestComment, &row.LatestCommentAt); err != nil {
			return nil, fmt.Errorf("%w: scan author stats: %v", database.ErrQuery, err)
		}
		stats = append(stats, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: top authors with own comment: %v", database.ErrQuery, err)
	}
	return stats, nil
}
