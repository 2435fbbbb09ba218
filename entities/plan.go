package entities

import "time"

// Plan is a persisted snapshot of one generated rotation plan. The full
// structured plan is stored as a JSON blob; list views only need the
// indexed columns.
type Plan struct {
	PlanID        string    `gorm:"primaryKey" json:"plan_id"`
	FieldID       string    `json:"field_id" gorm:"index"`
	UserID        string    `json:"user_id" gorm:"index"`
	PlanningYears int       `json:"planning_years"`
	Source        string    `json:"source"` // backend|rag|mock
	PlanJSON      string    `json:"plan_json"`
	CreatedAt     time.Time `json:"created_at"`
}
