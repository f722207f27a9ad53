package ports

import (
	"context"

	"github.com/Error160/blog-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Username             string
	Email                string
	Password             string
	PasswordConfirmation string
	FirstName            string
	LastName             string
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService covers the user registry and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, tokenKey string) error
	Profile(ctx context.Context, who domain.Identity) (*domain.User, error)
	// Authenticate resolves a bearer token key to the identity it belongs to.
	Authenticate(ctx context.Context, tokenKey string) (domain.Identity, error)
}
