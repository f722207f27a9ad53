package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/core/domain"
)

// Context keys set by Authenticate.
const (
	ContextKeyIdentity = "identity"
	ContextKeyToken    = "token"
)

// TokenAuthenticator resolves a token key to the identity that owns it.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, tokenKey string) (domain.Identity, error)
}

// Authenticate establishes the request identity from the Authorization
// header. Both "Bearer <key>" and "Token <key>" are accepted. Requests
// without the header, or with another scheme, continue as anonymous. A
// recognised scheme carrying a bad or expired key is rejected with 401 on
// every route, reads included.
func Authenticate(auth TokenAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyIdentity, domain.Identity{})

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.Fields(authHeader)
			if len(parts) == 0 || !isTokenScheme(parts[0]) {
				return next(c)
			}
			if len(parts) != 2 {
				return domain.ErrInvalidToken
			}

			who, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set(ContextKeyIdentity, who)
			c.Set(ContextKeyToken, parts[1])
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c).Anonymous() {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the identity set by Authenticate, or the anonymous
// identity when the middleware did not run.
func IdentityFrom(c echo.Context) domain.Identity {
	who, _ := c.Get(ContextKeyIdentity).(domain.Identity)
	return who
}

// TokenFrom returns the raw token key presented with the request.
func TokenFrom(c echo.Context) string {
	key, _ := c.Get(ContextKeyToken).(string)
	return key
}

func isTokenScheme(s string) bool {
	return strings.EqualFold(s, "bearer") || strings.EqualFold(s, "token")
}
