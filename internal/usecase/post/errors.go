// Package post provides the blog post use cases: create, list, get, update
// and delete. Field content is not validated here; storage constraints are
// the only gate.
package post

import "errors"

// Sentinel errors for post use case operations.
var (
	// ErrPostNotFound indicates that no post has the requested ID.
	// Returned by Get, Update and Delete, including for posts that were deleted.
	ErrPostNotFound = errors.New("blog post not found")

	// ErrInvalidPostID indicates that the provided post ID is not positive.
	// Such an ID can never match a stored post.
	ErrInvalidPostID = errors.New("invalid post ID")
)

// IsNotFound reports whether err means the requested post does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) || errors.Is(err, ErrInvalidPostID)
}
