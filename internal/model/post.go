package model

import "time"

// Post represents a blog post. Posts are immutable after creation: there is
// no update or delete operation, which is what makes the un-invalidated
// post cache safe.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
