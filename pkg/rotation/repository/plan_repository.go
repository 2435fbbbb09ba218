package repository

import "github.com/UmashankarGouda/KrishiChakra/entities"

type PlanRepository interface {
	Create(p *entities.Plan) error
	ListByField(fieldID, uid string) ([]entities.Plan, error)
	LatestByField(fieldID, uid string) (*entities.Plan, error)
}
