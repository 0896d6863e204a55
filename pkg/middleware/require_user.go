package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UIDHeader is set by a fronting proxy that has already authenticated the
// user.
const UIDHeader = "X-Pasture-Uid"

// RequireUser rejects requests without a user id when enabled. It reads the
// proxy header first, then the cookie. Disabled, it passes through and
// DevLogin fills the id instead.
func RequireUser(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get(UIDHeader)
			if uid == "" {
				if ck, err := c.Cookie(UIDCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing user id"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
