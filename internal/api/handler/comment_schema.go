package handler

import (
	"time"

	"github.com/Error160/blog-api/internal/core/ports"
)

type commentRequest struct {
	PostID  string `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// commentUpdateRequest is the body of PUT and PATCH. The post of a comment
// cannot change, so content is the only field read.
type commentUpdateRequest struct {
	Content *string `json:"content"`
}

type commentResponse struct {
	ID        string         `json:"id"`
	Post      string         `json:"post"`
	Author    authorResponse `json:"author"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func toCommentResponse(cm *ports.CommentDetail) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		Post:      cm.PostID,
		Author:    toAuthorResponse(cm.Author),
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
	}
}

func toCommentResponses(cs []ports.CommentDetail) []commentResponse {
	out := make([]commentResponse, len(cs))
	for i := range cs {
		out[i] = toCommentResponse(&cs[i])
	}
	return out
}
