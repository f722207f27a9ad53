package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/core/domain"
)

// RequireAdmin lets only admin identities through: anonymous callers get 401,
// everyone else 403. Services repeat the check through domain.Authorize.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who := IdentityFrom(c)
			if who.Anonymous() {
				return domain.ErrUnauthenticated
			}
			if !who.IsAdmin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
