package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mflix/catalog-api/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add creates a new comment owned by the authenticated caller.
//
// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body      addCommentRequest  true  "Comment details"
// @Success      201   {object}  domain.Comment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/comments [post]
// @Security     BearerAuth
func (h *CommentHandler) Add(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	name, _ := c.Get("name").(string)
	comment, err := h.commentService.AddComment(c.Request().Context(), email, name, req.MovieID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// Get fetches a single comment by id. No authentication required: comments
// are public, only mutations are ownership-scoped.
//
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  domain.Comment
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.commentService.GetComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// Update replaces the comment text. The ownership filter means a caller who
// does not own the comment gets a 404, indistinguishable from a missing id.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Comment id"
// @Param        body  body      updateCommentRequest  true  "New text"
// @Success      200   {object}  commentStatusResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/comments/{id} [put]
// @Security     BearerAuth
func (h *CommentHandler) Update(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ok, err := h.commentService.UpdateComment(c.Request().Context(), c.Param("id"), req.Text, email)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "comment not found or not owned by caller")
	}

	return c.JSON(http.StatusOK, commentStatusResponse{Status: "updated"})
}

// Delete removes the comment, subject to the same ownership filter as Update.
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment id"
// @Success      200  {object}  commentStatusResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/comments/{id} [delete]
// @Security     BearerAuth
func (h *CommentHandler) Delete(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	ok, err := h.commentService.DeleteComment(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return err
	}
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "comment not found or not owned by caller")
	}

	return c.JSON(http.StatusOK, commentStatusResponse{Status: "deleted"})
}

// MostActiveCommenters returns the top-20 commenters report.
//
// @Summary      Most active commenters
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.Critic
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/reports/most-active-commenters [get]
// @Security     BearerAuth
func (h *CommentHandler) MostActiveCommenters(c echo.Context) error {
	critics, err := h.commentService.MostActiveCommenters(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, critics)
}
