package service

import (
	"context"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/types"
)

type RotationService interface {
	// GeneratePlan always returns a complete plan for a valid request;
	// the only error path is request validation.
	GeneratePlan(ctx context.Context, req types.PlanRequest) (*types.CropRotationPlan, error)
	ListPlans(fieldID, uid string) ([]entities.Plan, error)
	LatestPlan(fieldID, uid string) (*entities.Plan, error)
}
