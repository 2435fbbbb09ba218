package entities

import "time"

// AgroDocument is one agronomy reference text in the local knowledge base,
// for example an ICAR advisory or a state extension bulletin.
type AgroDocument struct {
	DocID     uint      `gorm:"primaryKey" json:"doc_id"`
	Title     string    `json:"title"`
	SourceURL string    `json:"source_url"`
	Tags      string    `json:"tags"`
	Crop      string    `gorm:"index" json:"crop"`
	Region    string    `json:"region"`
	CreatedAt time.Time
}

type AgroChunk struct {
	ChunkID   uint      `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint      `gorm:"index" json:"doc_id"`
	Ord       int       `json:"ord"`
	Text      string    `json:"text"`
	Embedding []byte    `json:"-"`
	CreatedAt time.Time
}
