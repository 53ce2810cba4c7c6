// Package entity defines the core domain entities of the blog.
// Post is the only persisted entity; it carries its own timestamps
// and has no relations to other tables.
package entity

import "time"

// Post represents a single blog post.
// ID is assigned by storage on creation and never reused.
type Post struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

