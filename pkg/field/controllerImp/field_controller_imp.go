package controllerImp

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type fieldReq struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	SoilType    string   `json:"soil_type"`
	Season      string   `json:"season"`
	ClimateZone string   `json:"climate_zone"`
	Size        float64  `json:"size"`
	Status      string   `json:"status"`
	CurrentCrop string   `json:"current_crop"`
	Notes       string   `json:"notes"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	if req.Size <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "size must be positive"})
	}
	status := req.Status
	if status == "" {
		status = "planning"
	}
	f := &entities.FieldBatch{
		ID:          "field_" + uuid.NewString(),
		UserID:      uid,
		Name:        req.Name,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		SoilType:    req.SoilType,
		Season:      req.Season,
		ClimateZone: req.ClimateZone,
		Size:        req.Size,
		Status:      status,
		CurrentCrop: req.CurrentCrop,
		Notes:       req.Notes,
	}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	f, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	f, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Location != "" {
		f.Location = req.Location
	}
	if req.Latitude != nil {
		f.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		f.Longitude = req.Longitude
	}
	if req.SoilType != "" {
		f.SoilType = req.SoilType
	}
	if req.Season != "" {
		f.Season = req.Season
	}
	if req.ClimateZone != "" {
		f.ClimateZone = req.ClimateZone
	}
	if req.Size > 0 {
		f.Size = req.Size
	}
	if req.Status != "" {
		f.Status = req.Status
	}
	if req.CurrentCrop != "" {
		f.CurrentCrop = req.CurrentCrop
	}
	if req.Notes != "" {
		f.Notes = req.Notes
	}
	if err := h.repo.Save(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Delete(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if _, err := h.repo.FindByID(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	if err := h.repo.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
