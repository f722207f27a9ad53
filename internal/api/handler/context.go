package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/api/middleware"
	"github.com/Error160/blog-api/internal/core/domain"
)

// ctxIdentity returns the caller identity established by the Authenticate
// middleware. It is anonymous when no token was presented; services decide
// whether that is acceptable.
func ctxIdentity(c echo.Context) domain.Identity {
	return middleware.IdentityFrom(c)
}

// ctxToken returns the token key the caller authenticated with.
func ctxToken(c echo.Context) string {
	return middleware.TokenFrom(c)
}
