package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const uidCookie = "KC_UID"

// DevLogin identifies the farmer via a cookie, minting a demo identity
// when none is present. Real authentication sits in front of this in
// production deployments.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = "demo_user"
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
