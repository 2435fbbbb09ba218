package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/ai"
	"github.com/UmashankarGouda/KrishiChakra/pkg/bhuvan"
	"github.com/UmashankarGouda/KrishiChakra/pkg/crops"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rag"
	planrepo "github.com/UmashankarGouda/KrishiChakra/pkg/rotation/repository"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.AgroChunk, error)
}

// ragQuerier is the direct RAG tier's upstream, satisfied by *rag.Client.
type ragQuerier interface {
	Query(ctx context.Context, question, userID string) (*rag.Answer, error)
}

type RotationSvc struct {
	lex        *crops.Lexicon
	rag        ragQuerier
	simplifier ai.Simplifier
	geo        *bhuvan.Client
	backendURL string
	repoPlan   planrepo.PlanRepository
	kb         kbSearcher
}

// NewRotationService wires the plan-generation façade. geo, repoPlan and
// kb may be nil; the corresponding enrichment is skipped.
func NewRotationService(
	lex *crops.Lexicon,
	rag ragQuerier,
	simplifier ai.Simplifier,
	geo *bhuvan.Client,
	backendURL string,
	pr planrepo.PlanRepository,
	kb kbSearcher,
) *RotationSvc {
	return &RotationSvc{
		lex:        lex,
		rag:        rag,
		simplifier: simplifier,
		geo:        geo,
		backendURL: backendURL,
		repoPlan:   pr,
		kb:         kb,
	}
}

type strategy struct {
	name string
	run  func(ctx context.Context, req types.PlanRequest) (*types.CropRotationPlan, error)
}

// GeneratePlan walks the fallback tiers in order and short-circuits on
// the first success. The terminal mock tier makes no external calls and
// cannot fail, so a valid request always yields a complete plan.
func (s *RotationSvc) GeneratePlan(ctx context.Context, req types.PlanRequest) (*types.CropRotationPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var bh map[string]any
	if s.geo != nil && req.Field.Latitude != nil && req.Field.Longitude != nil {
		bh = s.geo.FetchLULCStats(ctx, *req.Field.Latitude, *req.Field.Longitude)
	}

	tiers := []strategy{
		{name: "backend", run: s.tryBackend},
		{name: "rag", run: s.tryRAG},
	}
	for _, t := range tiers {
		plan, err := t.run(ctx, req)
		if err != nil {
			log.Printf("[plan] %s tier failed: %v", t.name, err)
			continue
		}
		s.finish(plan, req, bh)
		return plan, nil
	}

	plan := s.mockPlan(req)
	s.finish(plan, req, bh)
	return plan, nil
}

func (s *RotationSvc) ListPlans(fieldID, uid string) ([]entities.Plan, error) {
	if s.repoPlan == nil {
		return nil, nil
	}
	return s.repoPlan.ListByField(fieldID, uid)
}

func (s *RotationSvc) LatestPlan(fieldID, uid string) (*entities.Plan, error) {
	if s.repoPlan == nil {
		return nil, errors.New("plan storage not configured")
	}
	return s.repoPlan.LatestByField(fieldID, uid)
}

// finish attaches diagnostics and persists a snapshot. Persistence is
// best-effort; a storage error never blocks the caller's plan.
func (s *RotationSvc) finish(plan *types.CropRotationPlan, req types.PlanRequest, bh map[string]any) {
	if plan.BhuvanData == nil {
		plan.BhuvanData = bh
	}
	if s.repoPlan == nil {
		return
	}
	b, err := json.Marshal(plan)
	if err != nil {
		return
	}
	rec := &entities.Plan{
		PlanID:        plan.ID,
		FieldID:       plan.FieldID,
		UserID:        req.Field.UserID,
		PlanningYears: plan.PlanningYears,
		Source:        plan.Source,
		PlanJSON:      string(b),
		CreatedAt:     plan.CreatedAt,
	}
	if err := s.repoPlan.Create(rec); err != nil {
		log.Printf("[plan] persist failed: %v", err)
	}
}

func newPlanID() string { return "plan_" + uuid.NewString() }

func nowUTC() time.Time { return time.Now().UTC() }
