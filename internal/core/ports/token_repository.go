package ports

import (
	"context"

	"github.com/Error160/blog-api/internal/core/domain"
)

// TokenRepository stores opaque bearer tokens. Expired tokens are never
// returned; lookups for them report domain.ErrTokenNotFound.
type TokenRepository interface {
	Save(ctx context.Context, token domain.Token) error
	FindByKey(ctx context.Context, key string) (*domain.Token, error)
	FindByUser(ctx context.Context, userID string) (*domain.Token, error)
	// Delete removes the token and its user index entry.
	Delete(ctx context.Context, token domain.Token) error
}
