package serviceImp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

// tryBackend posts the request to the integrated rotation backend and
// normalizes its snake_case superset response into the canonical plan
// shape. Missing optional fields get safe defaults.
func (s *RotationSvc) tryBackend(ctx context.Context, req types.PlanRequest) (*types.CropRotationPlan, error) {
	if s.backendURL == "" {
		return nil, errors.New("rotation backend not configured")
	}

	body, _ := json.Marshal(map[string]any{
		"field":                 req.Field,
		"planning_years":        req.PlanningYears,
		"specific_requirements": req.SpecificRequirements,
	})
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(s.backendURL, "/")+"/api/rotation/generate-ai-plan", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpc := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("backend: status %d", resp.StatusCode)
	}

	var data struct {
		ID            string `json:"id"`
		FieldID       string `json:"field_id"`
		PlanningYears int    `json:"planning_years"`
		Crops         []struct {
			Year          int      `json:"year"`
			Season        string   `json:"season"`
			Crop          string   `json:"crop"`
			Reason        string   `json:"reason"`
			ExpectedYield string   `json:"expected_yield"`
			SoilBenefits  []string `json:"soil_benefits"`
		} `json:"crops"`
		OverallBenefits []string       `json:"overall_benefits"`
		ProfitEstimate  string         `json:"profit_estimate"`
		RiskAssessment  string         `json:"risk_assessment"`
		Recommendations []string       `json:"recommendations"`
		CreatedAt       string         `json:"created_at"`
		BhuvanData      map[string]any `json:"bhuvan_data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	plan := &types.CropRotationPlan{
		ID:              data.ID,
		FieldID:         data.FieldID,
		PlanningYears:   data.PlanningYears,
		OverallBenefits: data.OverallBenefits,
		ProfitEstimate:  data.ProfitEstimate,
		RiskAssessment:  data.RiskAssessment,
		Recommendations: data.Recommendations,
		CreatedAt:       nowUTC(),
		Source:          "backend",
		BhuvanData:      data.BhuvanData,
	}
	if plan.ID == "" {
		plan.ID = newPlanID()
	}
	if plan.FieldID == "" {
		plan.FieldID = req.Field.ID
	}
	if plan.PlanningYears < 1 {
		plan.PlanningYears = req.PlanningYears
	}
	if plan.OverallBenefits == nil {
		plan.OverallBenefits = []string{}
	}
	if plan.ProfitEstimate == "" {
		plan.ProfitEstimate = "—"
	}
	if plan.RiskAssessment == "" {
		plan.RiskAssessment = "—"
	}
	if plan.Recommendations == nil {
		plan.Recommendations = []string{}
	}
	if t, err := time.Parse(time.RFC3339, data.CreatedAt); err == nil {
		plan.CreatedAt = t
	}

	raw := make([]types.YearCrop, 0, len(data.Crops))
	for i, c := range data.Crops {
		year := c.Year
		if year == 0 {
			year = i/2 + 1
		}
		raw = append(raw, types.YearCrop{
			Year:          year,
			Season:        c.Season,
			Crop:          c.Crop,
			Reason:        c.Reason,
			ExpectedYield: c.ExpectedYield,
			SoilBenefits:  c.SoilBenefits,
		})
	}
	plan.Crops = normalizeCrops(raw, plan.PlanningYears)
	return plan, nil
}

// tryRAG queries the RAG service directly and assembles the plan from
// its free-text answer.
func (s *RotationSvc) tryRAG(ctx context.Context, req types.PlanRequest) (*types.CropRotationPlan, error) {
	if s.rag == nil {
		return nil, errors.New("rag client not configured")
	}
	ans, err := s.rag.Query(ctx, s.buildQuestion(req), req.Field.UserID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, ans.Answer, req), nil
}

// buildQuestion synthesizes the RAG question from the request, with a
// best-effort slice of local knowledge-base context appended.
func (s *RotationSvc) buildQuestion(req types.PlanRequest) string {
	q := fmt.Sprintf(
		"Generate a detailed %d-year crop rotation plan for %s (%g acres, %s soil, %s climate). "+
			"Include: 1) Crop sequence with specific crops for each year, 2) Expected yields, "+
			"3) Soil benefits, 4) Profit estimation, 5) Risk assessment, 6) Recommendations.",
		req.PlanningYears, req.Field.Location, req.Field.Size, req.Field.SoilType, req.Field.ClimateZone)
	if req.SpecificRequirements != "" {
		q += " Additional requirements: " + req.SpecificRequirements
	}
	if s.kb != nil {
		snips, _ := s.kb.Search(req.Field.Location+" "+req.Field.SoilType+" crop rotation", 4)
		var kbCtx string
		for _, ch := range snips {
			if len(kbCtx) > 2000 {
				break
			}
			kbCtx += "\n---\n" + ch.Text
		}
		if kbCtx != "" {
			q += "\nUse this local knowledge where relevant:" + kbCtx
		}
	}
	return q
}

// mockTemplate is the synthetic rotation cycled by the terminal tier.
var mockTemplate = []types.YearCrop{
	{Season: "Kharif", Crop: "Rice", Reason: "Well-suited for clay loam soil", ExpectedYield: "+25%", SoilBenefits: []string{"Nitrogen fixation", "Organic matter increase"}},
	{Season: "Rabi", Crop: "Wheat", Reason: "Good winter crop for this climate", ExpectedYield: "+20%", SoilBenefits: []string{"Soil structure improvement"}},
	{Season: "Kharif", Crop: "Legumes", Reason: "Nitrogen fixing properties", ExpectedYield: "+30%", SoilBenefits: []string{"Nitrogen enrichment", "Soil health boost"}},
	{Season: "Rabi", Crop: "Mustard", Reason: "Break disease cycle", ExpectedYield: "+22%", SoilBenefits: []string{"Pest control", "Soil aeration"}},
	{Season: "Kharif", Crop: "Maize", Reason: "High yield potential", ExpectedYield: "+28%", SoilBenefits: []string{"Deep root system", "Organic matter"}},
	{Season: "Rabi", Crop: "Barley", Reason: "Drought tolerant option", ExpectedYield: "+18%", SoilBenefits: []string{"Water conservation", "Soil protection"}},
}

// mockPlan is the terminal fallback: fully synthetic, scaled by field
// size and horizon, no external calls, cannot fail.
func (s *RotationSvc) mockPlan(req types.PlanRequest) *types.CropRotationPlan {
	years := req.PlanningYears
	cropsList := make([]types.YearCrop, 0, years*2)
	for i := 0; i < years*2; i++ {
		c := mockTemplate[i%len(mockTemplate)]
		c.Year = i/2 + 1
		c.SoilBenefits = append([]string(nil), c.SoilBenefits...)
		cropsList = append(cropsList, c)
	}

	return &types.CropRotationPlan{
		ID:            newPlanID(),
		FieldID:       req.Field.ID,
		PlanningYears: years,
		Crops:         normalizeCrops(cropsList, years),
		OverallBenefits: []string{
			"Improved soil health through diverse crop rotation",
			"Reduced pest and disease pressure",
			"Enhanced water use efficiency",
			"Increased overall farm profitability",
		},
		ProfitEstimate: "₹" + formatINR(req.Field.Size*50000*float64(years)),
		RiskAssessment: "Low to Medium risk with diversified crop selection",
		Recommendations: []string{
			"Implement organic farming practices",
			"Monitor soil health regularly",
			"Use precision farming techniques",
			"Consider crop insurance for risk mitigation",
		},
		CreatedAt: nowUTC(),
		Source:    "mock",
	}
}
