package ports

import (
	"context"
	"time"

	"github.com/Error160/blog-api/internal/core/domain"
)

// CommentDetail is a comment with its author resolved.
type CommentDetail struct {
	ID        string
	PostID    string
	Author    AuthorSummary
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCommentInput struct {
	PostID  string
	Content string
}

// UpdateCommentInput carries a partial update. A comment cannot move to
// another post, so only the content is mutable.
type UpdateCommentInput struct {
	Content *string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	List(ctx context.Context, filter CommentFilter) ([]CommentDetail, error)
	Get(ctx context.Context, id string) (*CommentDetail, error)
	Create(ctx context.Context, who domain.Identity, in CreateCommentInput) (*CommentDetail, error)
	Update(ctx context.Context, who domain.Identity, id string, in UpdateCommentInput) (*CommentDetail, error)
	Delete(ctx context.Context, who domain.Identity, id string) error
}
