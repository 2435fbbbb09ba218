package controller

import "github.com/labstack/echo/v4"

type RotationController interface {
	GeneratePlan(c echo.Context) error
	ListPlans(c echo.Context) error
	LatestPlan(c echo.Context) error
	Health(c echo.Context) error
}
