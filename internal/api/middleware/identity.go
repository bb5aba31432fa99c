package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the caller's identity. There is no authentication
// layer in front of it: the value is trusted as-is, which is a known security
// gap inherited from the system this API replaces. A real deployment must
// derive identity from an auth layer instead.
const HeaderUserID = "X-User-ID"

// Identity requires the caller-identity header on mutating routes and
// injects it into the request context.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get(HeaderUserID)
			if userID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing "+HeaderUserID+" header")
			}
			c.Set("user_id", userID)
			return next(c)
		}
	}
}
