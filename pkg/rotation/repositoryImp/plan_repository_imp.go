package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/rotation/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.Plan) error { return r.db.Create(p).Error }

func (r *planRepo) ListByField(fieldID, uid string) ([]entities.Plan, error) {
	var out []entities.Plan
	if err := r.db.Where("field_id = ? AND user_id = ?", fieldID, uid).
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) LatestByField(fieldID, uid string) (*entities.Plan, error) {
	var p entities.Plan
	if err := r.db.Where("field_id = ? AND user_id = ?", fieldID, uid).
		Order("created_at DESC").First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
