package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the caller identity injected by the Identity middleware.
// Presence proves the middleware ran; an empty value means a route was wired
// without it.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing caller identity")
	}
	return userID, nil
}
