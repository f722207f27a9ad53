package ports

import (
	"context"

	"github.com/Error160/blog-api/internal/core/domain"
)

// CommentFilter narrows List. An empty PostID means all comments.
type CommentFilter struct {
	PostID string
}

// CommentRepository defines persistence operations for comments.
// List returns comments in creation order.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	List(ctx context.Context, filter CommentFilter) ([]*domain.Comment, error)
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}
