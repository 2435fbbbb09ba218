package repository

import "github.com/UmashankarGouda/KrishiChakra/entities"

type FieldRepository interface {
	Create(f *entities.FieldBatch) error
	FindByID(id, uid string) (*entities.FieldBatch, error)
	ListByUser(uid string) ([]entities.FieldBatch, error)
	Save(f *entities.FieldBatch) error
	Delete(id, uid string) error
}
