package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// CommentHandler handles comment reads and writes on artworks.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// List handles GET /api/artworks/:id/comments.
//
// @Summary      List an artwork's comments, newest first
// @Tags         comments
// @Produce      json
// @Param        id   path     string  true  "Artwork id"
// @Success      200  {array}  ports.CommentWithUser
// @Router       /api/artworks/{id}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/artworks/:id/comments.
//
// @Summary      Comment on an artwork
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string                true  "Caller identity"
// @Param        id         path      string                true  "Artwork id"
// @Param        body       body      createCommentRequest  true  "Comment content"
// @Success      201        {object}  domain.Comment
// @Failure      400        {object}  errorResponse
// @Router       /api/artworks/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.AddComment(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}
