package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/api/metrics"
	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /comments, optionally filtered by ?post=<id>.
//
// @Summary      List comments
// @Tags         comments
// @Produce      json
// @Param        post  query     string  false  "Only comments of this post"
// @Success      200   {array}   commentResponse
// @Router       /comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context(), ports.CommentFilter{PostID: c.QueryParam("post")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponses(comments))
}

// Get handles GET /comments/:id.
//
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  commentResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	cm, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(cm))
}

// Create handles POST /comments. The author is the authenticated caller.
//
// @Summary      Create a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cm, err := h.service.Create(c.Request().Context(), ctxIdentity(c), ports.CreateCommentInput{
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues(metrics.ResourceComment).Inc()
	return c.JSON(http.StatusCreated, toCommentResponse(cm))
}

// Replace handles PUT /comments/:id. Only the author may call it.
//
// @Summary      Replace a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID"
// @Param        body  body      commentUpdateRequest  true  "Comment"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /comments/{id} [put]
func (h *CommentHandler) Replace(c echo.Context) error {
	var req commentUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Content == nil {
		return domain.NewValidationError("content", "this field is required")
	}
	return h.update(c, req)
}

// Patch handles PATCH /comments/:id. Only the author may call it.
//
// @Summary      Partially update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID"
// @Param        body  body      commentUpdateRequest  true  "Fields to change"
// @Success      200   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /comments/{id} [patch]
func (h *CommentHandler) Patch(c echo.Context) error {
	var req commentUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.update(c, req)
}

// Delete handles DELETE /comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path  string  true  "Comment ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentDeletedTotal.WithLabelValues(metrics.ResourceComment).Inc()
	return c.NoContent(http.StatusNoContent)
}

func (h *CommentHandler) update(c echo.Context, req commentUpdateRequest) error {
	cm, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), ports.UpdateCommentInput{
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(cm))
}
