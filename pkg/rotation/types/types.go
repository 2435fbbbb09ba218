package types

import (
	"errors"
	"strings"
	"time"
)

// FieldInfo carries the field attributes a plan request needs. It mirrors
// the persisted FieldBatch but is owned by the caller and immutable for
// the duration of one generation.
type FieldInfo struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id,omitempty"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Size        float64  `json:"size"` // acres
	SoilType    string   `json:"soil_type"`
	ClimateZone string   `json:"climate_zone"`
	Season      string   `json:"season"`
	CurrentCrop string   `json:"current_crop,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// PlanRequest is one plan-generation request.
type PlanRequest struct {
	Field                FieldInfo `json:"field"`
	PlanningYears        int       `json:"planning_years"`
	SpecificRequirements string    `json:"specific_requirements,omitempty"`
}

// Validate fails fast on caller misuse. Upstream flakiness is never an
// error; a bad request is.
func (r PlanRequest) Validate() error {
	if r.PlanningYears < 1 {
		return errors.New("planning_years must be at least 1")
	}
	if r.Field.Size <= 0 {
		return errors.New("field size must be positive")
	}
	if strings.TrimSpace(r.Field.ID) == "" {
		return errors.New("field id is required")
	}
	return nil
}

// YearCrop is one seasonal crop assignment inside a plan.
type YearCrop struct {
	Year          int      `json:"year"`
	Season        string   `json:"season"`
	Crop          string   `json:"crop"`
	Reason        string   `json:"reason"`
	ExpectedYield string   `json:"expected_yield"`
	SoilBenefits  []string `json:"soil_benefits"`
}

// CropRotationPlan is the output artifact: a complete, immutable snapshot.
// Every field is populated before a plan is returned to a caller.
type CropRotationPlan struct {
	ID              string         `json:"id"`
	FieldID         string         `json:"field_id"`
	PlanningYears   int            `json:"planning_years"`
	Crops           []YearCrop     `json:"crops"`
	OverallBenefits []string       `json:"overall_benefits"`
	ProfitEstimate  string         `json:"profit_estimate"`
	RiskAssessment  string         `json:"risk_assessment"`
	Recommendations []string       `json:"recommendations"`
	CreatedAt       time.Time      `json:"created_at"`
	Source          string         `json:"source,omitempty"`      // backend|rag|mock
	BhuvanData      map[string]any `json:"bhuvan_data,omitempty"` // raw upstream diagnostics
}
