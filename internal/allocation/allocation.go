package allocation

import "time"

// Allocation statuses. Transitions move one step at a time from planned to
// allocated to spent, never backwards. Allocations are earmarks for reporting
// and do not touch the campaign balance.
const (
	StatusPlanned   = "planned"
	StatusAllocated = "allocated"
	StatusSpent     = "spent"
)

type Allocation struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	CampaignID     int64     `json:"campaign_id" gorm:"column:campaign_id;not null"`
	Amount         float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Purpose        string    `json:"purpose" gorm:"not null"`
	AllocationDate time.Time `json:"allocation_date" gorm:"column:allocation_date;type:date"`
	Status         string    `json:"status" gorm:"default:planned"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Allocation) TableName() string {
	return "fund_allocations"
}

func (a *Allocation) CanTransitionTo(status string) bool {
	switch a.Status {
	case StatusPlanned:
		return status == StatusAllocated
	case StatusAllocated:
		return status == StatusSpent
	default:
		return false
	}
}

func ValidStatus(status string) bool {
	return status == StatusPlanned || status == StatusAllocated || status == StatusSpent
}
