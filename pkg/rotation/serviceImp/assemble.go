package serviceImp

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UmashankarGouda/KrishiChakra/pkg/ai"
	"github.com/UmashankarGouda/KrishiChakra/pkg/crops"
	"github.com/UmashankarGouda/KrishiChakra/pkg/parse"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

var (
	profitKeywords = []string{"profit", "revenue", "income", "economic"}
	riskKeywords   = []string{"risk", "challenge", "warning", "concern", "threat"}
)

var defaultBenefits = []string{
	"Improved soil nitrogen through legume fixation",
	"Reduced dependency on chemical fertilizers",
	"Enhanced soil structure and organic matter",
	"Diversified income sources across seasons",
	"Natural pest and disease cycle disruption",
	"Sustainable long-term soil health improvement",
}

var defaultRecommendations = []string{
	"Use certified seeds with high germination rates",
	"Implement drip irrigation for water efficiency",
	"Apply biofertilizers to enhance legume nitrogen fixation",
	"Monitor soil health with periodic testing",
	"Adopt integrated pest management practices",
	"Maintain crop residue management for organic matter",
	"Plan harvest timing to optimize market prices",
}

const defaultRisk = "Key risks include weather variability, market price fluctuations, and pest management. " +
	"Legume crops may face challenges with pod borer infestations. Diversified rotation helps mitigate " +
	"soil depletion and disease buildup. Regular monitoring and integrated pest management recommended."

// assemble parses one RAG answer into a complete plan. Every extractor
// miss is backfilled with a deterministic default so the returned plan
// never has an empty field; the simplifier pass is a quality step that
// degrades to pass-through.
func (s *RotationSvc) assemble(ctx context.Context, answer string, req types.PlanRequest) *types.CropRotationPlan {
	years := req.PlanningYears

	primary := parse.ExtractRotation(answer, years, s.lex)

	profit := parse.ExtractSection(answer, profitKeywords)
	if profit == "" {
		profit = defaultProfitEstimate(req.Field.Size, years)
	}
	risk := parse.ExtractSection(answer, riskKeywords)
	if risk == "" {
		risk = defaultRisk
	}
	benefits := parse.ExtractBenefits(answer)
	if len(benefits) == 0 {
		benefits = append([]string(nil), defaultBenefits...)
	}
	recs := parse.ExtractRecommendations(answer)
	if len(recs) == 0 {
		recs = append([]string(nil), defaultRecommendations...)
	}

	simplified := s.simplifier.BatchSimplify(ctx, ai.BatchInput{
		Benefits:        strings.Join(benefits, "\n"),
		Risks:           risk,
		Recommendations: recs,
	})
	overall := splitNonEmpty(simplified.Benefits)
	if len(overall) == 0 {
		overall = benefits
	}
	if simplified.Risks != "" {
		risk = simplified.Risks
	}
	if len(simplified.Recommendations) > 0 {
		recs = simplified.Recommendations
	}

	return &types.CropRotationPlan{
		ID:              newPlanID(),
		FieldID:         req.Field.ID,
		PlanningYears:   years,
		Crops:           normalizeCrops(expandToSeasonPairs(primary), years),
		OverallBenefits: overall,
		ProfitEstimate:  ai.CleanFormatting(profit),
		RiskAssessment:  risk,
		Recommendations: recs,
		CreatedAt:       nowUTC(),
		Source:          "rag",
	}
}

// expandToSeasonPairs turns the per-year primary sequence into two
// seasonal slots per year. The primary crop keeps its native season slot
// when it has one; the next crop in the cycle fills the other slot.
func expandToSeasonPairs(primary []types.YearCrop) []types.YearCrop {
	n := len(primary)
	out := make([]types.YearCrop, 0, n*2)
	for i, p := range primary {
		companion := primary[(i+1)%n]
		kharif, rabi := p, companion
		if p.Season == "Rabi" {
			kharif, rabi = companion, p
		}
		kharif.Year, kharif.Season = p.Year, "Kharif"
		rabi.Year, rabi.Season = p.Year, "Rabi"
		out = append(out, kharif, rabi)
	}
	return out
}

// normalizeCrops enforces the plan-level invariant of exactly two
// seasonal assignments (Kharif, Rabi) for every planning year, padding
// from the default rotation and trimming extras. Applied uniformly to
// every generation tier.
func normalizeCrops(in []types.YearCrop, years int) []types.YearCrop {
	buckets := make([][]types.YearCrop, years)
	for i, c := range in {
		y := c.Year
		if y < 1 || y > years {
			y = (i/2)%years + 1
		}
		if len(buckets[y-1]) < 2 {
			buckets[y-1] = append(buckets[y-1], c)
		}
	}

	def := crops.DefaultRotation()
	seasons := [2]string{"Kharif", "Rabi"}
	out := make([]types.YearCrop, 0, years*2)
	for y := 0; y < years; y++ {
		for len(buckets[y]) < 2 {
			d := def[(y+len(buckets[y]))%len(def)]
			buckets[y] = append(buckets[y], types.YearCrop{
				Crop:          d.Name,
				Reason:        "Recommended based on conditions",
				ExpectedYield: d.Yield,
				SoilBenefits:  []string{"Improved soil health"},
			})
		}
		for s := 0; s < 2; s++ {
			c := buckets[y][s]
			c.Year = y + 1
			c.Season = seasons[s]
			if c.Crop == "" {
				c.Crop = "Crop"
			}
			if c.Reason == "" {
				c.Reason = "Recommended based on conditions"
			}
			if c.ExpectedYield == "" {
				c.ExpectedYield = "—"
			}
			if c.SoilBenefits == nil {
				c.SoilBenefits = []string{}
			}
			out = append(out, c)
		}
	}
	return out
}

// defaultProfitEstimate is the deterministic backfill when the answer
// carries no profit section: a function of field size and horizon only.
func defaultProfitEstimate(size float64, years int) string {
	return fmt.Sprintf(
		"Based on the rotation plan and current market rates, estimated annual profit ranges from ₹%s to ₹%s per acre, with total %d-year profit of approximately ₹%s.",
		formatINR(size*25000), formatINR(size*45000), years, formatINR(size*float64(years)*35000))
}

// formatINR groups digits in the Indian numbering style (12,34,567).
func formatINR(n float64) string {
	v := int64(math.Round(n))
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return sign + s
	}
	tail := s[len(s)-3:]
	head := s[:len(s)-3]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return sign + strings.Join(parts, ",") + "," + tail
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}
