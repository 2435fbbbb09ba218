package service

import "github.com/UmashankarGouda/KrishiChakra/entities"

type KBService interface {
	UpsertDocument(title, tags, crop, region, text, sourceURL string) (*entities.AgroDocument, int, error)
	Search(query string, k int) ([]entities.AgroChunk, error)
	ListDocuments() ([]entities.AgroDocument, error)
	DocsMeta(ids []uint) (map[uint]entities.AgroDocument, error)
}
