package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.FieldBatch) error { return r.db.Create(f).Error }

func (r *fieldRepo) FindByID(id, uid string) (*entities.FieldBatch, error) {
	var f entities.FieldBatch
	if err := r.db.Where("id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) ListByUser(uid string) ([]entities.FieldBatch, error) {
	var out []entities.FieldBatch
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save overwrites by primary key; callers prove ownership via FindByID first.
func (r *fieldRepo) Save(f *entities.FieldBatch) error { return r.db.Save(f).Error }

func (r *fieldRepo) Delete(id, uid string) error {
	return r.db.Where("id = ? AND user_id = ?", id, uid).Delete(&entities.FieldBatch{}).Error
}
