package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/controller"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/service"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

type RotationCtrl struct{ svc service.RotationService }

func New(svc service.RotationService) controller.RotationController {
	return &RotationCtrl{svc: svc}
}

func (h *RotationCtrl) GeneratePlan(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req types.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Field.UserID == "" {
		req.Field.UserID = uid
	}

	plan, err := h.svc.GeneratePlan(c.Request().Context(), req)
	if err != nil {
		// only request validation reaches here; upstream failures fall
		// through to the mock tier inside the service
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *RotationCtrl) ListPlans(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	fieldID := c.Param("id")
	plans, err := h.svc.ListPlans(fieldID, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plans)
}

func (h *RotationCtrl) LatestPlan(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	p, err := h.svc.LatestPlan(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan found"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *RotationCtrl) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"service": "Rotation Planning API",
	})
}
