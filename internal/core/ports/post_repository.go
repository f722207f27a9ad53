package ports

import (
	"context"

	"github.com/Error160/blog-api/internal/core/domain"
)

// PostRepository defines persistence operations for posts.
// List returns posts in creation order.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
	ExistsInCategory(ctx context.Context, categoryID string) (bool, error)
}
