package controller

import "github.com/labstack/echo/v4"

// AuthController exposes the dev identity endpoints. Production
// deployments front this with real authentication.
type AuthController interface {
	DevLogin(c echo.Context) error
	WhoAmI(c echo.Context) error
}
