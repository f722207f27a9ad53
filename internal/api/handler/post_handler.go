package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Error160/blog-api/internal/api/metrics"
	"github.com/Error160/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts.
//
// @Summary      List posts
// @Description  Posts are returned oldest first.
// @Tags         posts
// @Produce      json
// @Success      200  {array}  postResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Create handles POST /posts. The author is the authenticated caller.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ctxIdentity(c), ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.ContentCreatedTotal.WithLabelValues(metrics.ResourcePost).Inc()
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Replace handles PUT /posts/:id. Only the author may call it.
//
// @Summary      Replace a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post ID"
// @Param        body  body      postRequest  true  "Post"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Replace(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.update(c, req.update())
}

// Patch handles PATCH /posts/:id. Only the author may call it.
//
// @Summary      Partially update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Post ID"
// @Param        body  body      postPatchRequest  true  "Fields to change"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) Patch(c echo.Context) error {
	var req postPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.update(c, req.update())
}

// Delete handles DELETE /posts/:id. The post's comments go with it.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path  string  true  "Post ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	metrics.ContentDeletedTotal.WithLabelValues(metrics.ResourcePost).Inc()
	return c.NoContent(http.StatusNoContent)
}

// Comments handles GET /posts/:id/comments.
//
// @Summary      List the comments of a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post ID"
// @Success      200  {array}   commentResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id}/comments [get]
func (h *PostHandler) Comments(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponses(comments))
}

func (h *PostHandler) update(c echo.Context, in ports.UpdatePostInput) error {
	post, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}
