package repository

import "github.com/UmashankarGouda/KrishiChakra/entities"

type KBRepository interface {
	CreateDoc(*entities.AgroDocument) error
	BulkInsertChunks([]entities.AgroChunk) error
	ListDocs() ([]entities.AgroDocument, error)
	AllChunks() ([]entities.AgroChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.AgroDocument, error)
}
