package model

import "time"

// AuthorPostStats is one row of the top-author ranking in "latest post"
// mode: the author's post count joined with their most recent post and that
// post's most recent comment.
//
// Optional fields are pointers so that an author with no posts (or a latest
// post with no comments) serializes as an explicit JSON null rather than a
// missing key. Clients rely on the keys always being present.
type AuthorPostStats struct {
	AuthorID      string  `json:"author_id"`
	Name          string  `json:"name"`
	PostCount     int64   `json:"post_count"`
	LatestPost    *string `json:"latest_post_title"`
	LatestComment *string `json:"latest_comment_content"`
}

// AuthorCommentStats is one row of the top-author ranking in "own latest
// comment" mode: the author's post count joined with the most recent
// comment written by the author themselves. This is a different relation
// from AuthorPostStats, which follows comments on the author's posts.
type AuthorCommentStats struct {
	AuthorID        string     `json:"author_id"`
	Name            string     `json:"name"`
	PostCount       int64      `json:"post_count"`
	LatestComment   *string    `json:"latest_comment_content"`
	LatestCommentAt *time.Time `json:"latest_comment_at"`
}
