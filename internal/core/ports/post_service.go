package ports

import (
	"context"
	"time"

	"github.com/Error160/blog-api/internal/core/domain"
)

// AuthorSummary is the minimal author view embedded in posts and comments.
type AuthorSummary struct {
	ID       string
	Username string
	IsAdmin  bool
}

// CategorySummary is the minimal category view embedded in posts.
type CategorySummary struct {
	ID   string
	Name string
}

// PostDetail is a post with its author and category resolved.
type PostDetail struct {
	ID        string
	Title     string
	Content   string
	Author    AuthorSummary
	Category  CategorySummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePostInput carries the client-supplied fields of a new post.
// The author is never part of it.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID string
}

// UpdatePostInput carries a partial update; nil fields are left untouched.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CategoryID *string
}

// PostService defines use-case operations for posts.
type PostService interface {
	List(ctx context.Context) ([]PostDetail, error)
	Get(ctx context.Context, id string) (*PostDetail, error)
	Create(ctx context.Context, who domain.Identity, in CreatePostInput) (*PostDetail, error)
	Update(ctx context.Context, who domain.Identity, id string, in UpdatePostInput) (*PostDetail, error)
	Delete(ctx context.Context, who domain.Identity, id string) error
	ListComments(ctx context.Context, postID string) ([]CommentDetail, error)
}
