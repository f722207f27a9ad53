package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/api/metrics"
	"github.com/Error160/blog-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for categories. Reads are public,
// writes are admin-only.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	cs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(cs))
}

// Get handles GET /categories/:id.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	cat, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}

// Create handles POST /categories.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cat, err := h.service.Create(c.Request().Context(), ctxIdentity(c), req.input())
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues(metrics.ResourceCategory).Inc()
	return c.JSON(http.StatusCreated, toCategoryResponse(cat))
}

// Replace handles PUT /categories/:id.
//
// @Summary      Replace a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Replace(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.update(c, req.input())
}

// Patch handles PATCH /categories/:id.
//
// @Summary      Partially update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Category ID"
// @Param        body  body      categoryPatchRequest  true  "Fields to change"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /categories/{id} [patch]
func (h *CategoryHandler) Patch(c echo.Context) error {
	var req categoryPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.update(c, req.input())
}

// Delete handles DELETE /categories/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        id   path  string  true  "Category ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentDeletedTotal.WithLabelValues(metrics.ResourceCategory).Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) update(c echo.Context, in ports.CategoryInput) error {
	cat, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(cat))
}
