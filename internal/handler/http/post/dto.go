// Package post provides HTTP handlers for the blog post endpoints.
package post

import (
	"time"

	"inkwell/internal/domain/entity"
	postUC "inkwell/internal/usecase/post"
)

// DTO represents the JSON structure of a stored post.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Getting started with Go"`
	Content   string    `json:"content" example:"Go is a small language..."`
	Author    string    `json:"author" example:"Ada"`
	CreatedAt time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

// WriteRequest is the body accepted by create and update.
// Omitted fields are sent to storage as NULL and rejected there.
type WriteRequest struct {
	Title   *string `json:"title" example:"Getting started with Go"`
	Content *string `json:"content" example:"Go is a small language..."`
	Author  *string `json:"author" example:"Ada"`
}

// CreatedResponse is returned by a successful create.
type CreatedResponse struct {
	Message string `json:"message" example:"Blog post created successfully"`
	PostID  int64  `json:"postId" example:"1"`
}

// MessageResponse carries a human-readable status message.
type MessageResponse struct {
	Message string `json:"message" example:"Blog post updated successfully"`
}

// ErrorResponse carries an error description.
type ErrorResponse struct {
	Error string `json:"error" example:"NOT NULL constraint failed: posts.author"`
}

const (
	msgCreated  = "Blog post created successfully"
	msgUpdated  = "Blog post updated successfully"
	msgDeleted  = "Blog post deleted successfully"
	msgNotFound = "Blog post not found"
)

func (req WriteRequest) input() postUC.Input {
	return postUC.Input{Title: req.Title, Content: req.Content, Author: req.Author}
}

func toDTO(p *entity.Post) DTO {
	return DTO{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
