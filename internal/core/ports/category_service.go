package ports

import (
	"context"

	"github.com/Error160/blog-api/internal/core/domain"
)

// CategoryInput carries category fields. For updates a nil pointer leaves
// the stored value untouched; for creation Name and Description are required
// and a nil or empty Slug is derived from Name.
type CategoryInput struct {
	Name        *string
	Slug        *string
	Description *string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, who domain.Identity, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, who domain.Identity, id string, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, who domain.Identity, id string) error
}
