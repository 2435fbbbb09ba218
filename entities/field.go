package entities

import "time"

// FieldBatch is a user-owned parcel record, the unit of rotation planning.
type FieldBatch struct {
	ID          string   `gorm:"primaryKey" json:"id"`
	UserID      string   `json:"user_id" gorm:"index"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	SoilType    string   `json:"soil_type"`    // alluvial|black|red|laterite|sandy|clay loam
	Season      string   `json:"season"`       // kharif|rabi|zaid
	ClimateZone string   `json:"climate_zone"` // arid|semi-arid|sub-humid|humid
	Size        float64  `json:"size"`         // acres
	Status      string   `json:"status"`       // active|planning|fallow|harvested
	CurrentCrop string   `json:"current_crop,omitempty"`
	Notes       string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
