package models

import (
	"errors"
	"time"
)

// ErrNoBlogs is returned when a user has no blogs at all. Listing an empty
// set is reported as a not-found outcome rather than an empty success.
var ErrNoBlogs = errors.New("no blogs found for this user")

// Blog is a single post stored in the PostgreSQL blogs table.
type Blog struct {
	ID        int64     `json:"blog_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBlogRequest is the JSON body for POST /api/blogs.
type CreateBlogRequest struct {
	UserID  int64  `json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
