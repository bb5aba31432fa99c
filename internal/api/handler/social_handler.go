package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/api/metrics"
	"github.com/refugiartstudio-blip/refugiart-bazar-backend/internal/core/ports"
)

// SocialHandler handles the like and follow toggle endpoints.
type SocialHandler struct {
	service ports.SocialService
}

func NewSocialHandler(service ports.SocialService) *SocialHandler {
	return &SocialHandler{service: service}
}

// ToggleLike handles POST /api/artworks/:id/like.
//
// @Summary      Toggle a like on an artwork
// @Tags         social
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller identity"
// @Param        id         path      string  true  "Artwork id"
// @Success      200        {object}  toggleLikeResponse
// @Failure      400        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/artworks/{id}/like [post]
func (h *SocialHandler) ToggleLike(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	isLiked, err := h.service.ToggleLike(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.LikesToggledTotal.WithLabelValues(toggleState(isLiked)).Inc()
	return c.JSON(http.StatusOK, toggleLikeResponse{IsLiked: isLiked})
}

// ToggleFollow handles POST /api/users/:id/follow. The path id is the
// followee; the caller is the follower.
//
// @Summary      Toggle a follow on a user
// @Tags         social
// @Produce      json
// @Param        X-User-ID  header    string  true  "Caller identity"
// @Param        id         path      string  true  "Followee user id"
// @Success      200        {object}  toggleFollowResponse
// @Failure      400        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/users/{id}/follow [post]
func (h *SocialHandler) ToggleFollow(c echo.Context) error {
	followerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	isFollowing, err := h.service.ToggleFollow(c.Request().Context(), followerID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.FollowsToggledTotal.WithLabelValues(toggleState(isFollowing)).Inc()
	return c.JSON(http.StatusOK, toggleFollowResponse{IsFollowing: isFollowing})
}

func toggleState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
