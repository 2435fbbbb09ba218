package repositoryImp

import (
	"github.com/UmashankarGouda/KrishiChakra/entities"
	"github.com/UmashankarGouda/KrishiChakra/pkg/kb/repository"
	"gorm.io/gorm"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &repo{db} }

func (r *repo) CreateDoc(d *entities.AgroDocument) error { return r.db.Create(d).Error }

func (r *repo) BulkInsertChunks(cs []entities.AgroChunk) error { return r.db.Create(&cs).Error }

func (r *repo) ListDocs() ([]entities.AgroDocument, error) {
	var ds []entities.AgroDocument
	return ds, r.db.Order("doc_id DESC").Find(&ds).Error
}

func (r *repo) AllChunks() ([]entities.AgroChunk, error) {
	var cs []entities.AgroChunk
	return cs, r.db.Find(&cs).Error
}

func (r *repo) DocsByIDs(ids []uint) (map[uint]entities.AgroDocument, error) {
	if len(ids) == 0 {
		return map[uint]entities.AgroDocument{}, nil
	}
	var ds []entities.AgroDocument
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.AgroDocument, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
