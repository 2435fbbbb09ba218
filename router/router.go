package router

import (
	"github.com/labstack/echo/v4"

	"github.com/UmashankarGouda/KrishiChakra/pkg/middleware"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	rotationCtrl interface {
		GeneratePlan(echo.Context) error
		ListPlans(echo.Context) error
		LatestPlan(echo.Context) error
		Health(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		ListDocs(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// agronomy knowledge base
	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)
	api.GET("/kb/docs", kbCtrl.ListDocs)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields", fieldCtrl.List)
	api.GET("/fields/:id", fieldCtrl.Get)
	api.PUT("/fields/:id", fieldCtrl.Update)
	api.DELETE("/fields/:id", fieldCtrl.Delete)

	api.GET("/fields/:id/plans", rotationCtrl.ListPlans)
	api.GET("/fields/:id/plans/latest", rotationCtrl.LatestPlan)

	// rotation planning surface, path kept compatible with the Node backend
	r := e.Group("/api/rotation")
	r.POST("/generate-ai-plan", rotationCtrl.GeneratePlan)
	r.GET("/health", rotationCtrl.Health)

	return e
}
