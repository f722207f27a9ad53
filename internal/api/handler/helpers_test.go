package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/api/middleware"
	"github.com/Error160/blog-api/internal/core/domain"
)

var (
	alice = domain.Identity{UserID: "u1", Username: "alice"}
	bob   = domain.Identity{UserID: "u2", Username: "bob"}
	admin = domain.Identity{UserID: "u0", Username: "root", IsAdmin: true}
)

// newTestContext builds an echo.Context for a direct handler call. id, when
// non-empty, is exposed as the :id path parameter.
func newTestContext(method, target, body string, who domain.Identity, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyIdentity, who)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectValidation(t *testing.T, err error, field string) {
	t.Helper()
	ve, ok := err.(*domain.ValidationError)
	if !ok || ve.Field != field {
		t.Fatalf("expected ValidationError on %q, got %v", field, err)
	}
}
