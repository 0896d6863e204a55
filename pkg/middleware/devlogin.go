package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UIDCookie carries the user id that scopes editor sessions and saved
// layouts.
const UIDCookie = "PASTURE_UID"

const defaultUID = "dev"

// DevLogin resolves the user id from the cookie or ?uid= and stores it in
// the context as "uid". Unknown callers become the default dev user.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if q := c.QueryParam("uid"); q != "" && q != uid {
				uid = q
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/"})
			}
			if uid == "" {
				uid = defaultUID
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
