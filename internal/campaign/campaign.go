package campaign

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Campaign statuses. Only active campaigns accept donations; completed and
// cancelled are terminal.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// BankDetails is the payout destination for a campaign, stored as a JSON
// column. All four fields are required at creation time.
type BankDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	RoutingCode   string `json:"routing_code"`
}

func (b BankDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BankDetails) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("unsupported bank details column type %T", value)
	}
}

func (b BankDetails) Complete() bool {
	return b.AccountName != "" && b.AccountNumber != "" && b.BankName != "" && b.RoutingCode != ""
}

// MediaURLs is the list of campaign media references, stored as a JSON column.
type MediaURLs []string

func (m MediaURLs) Value() (driver.Value, error) {
	if m == nil {
		m = MediaURLs{}
	}
	return json.Marshal(m)
}

func (m *MediaURLs) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported media urls column type %T", value)
	}
}

type Campaign struct {
	ID                    int64       `json:"id" gorm:"primaryKey"`
	NGOID                 int64       `json:"ngo_id" gorm:"column:ngo_id;not null"`
	Title                 string      `json:"title" gorm:"not null"`
	Description           string      `json:"description" gorm:"not null"`
	TargetAmount          float64     `json:"target_amount" gorm:"column:target_amount;type:numeric(12,2);not null"`
	StartDate             time.Time   `json:"start_date" gorm:"column:start_date;type:date"`
	EndDate               time.Time   `json:"end_date" gorm:"column:end_date;type:date"`
	Beneficiaries         *string     `json:"beneficiaries,omitempty"`
	ImpactDetails         *string     `json:"impact_details,omitempty" gorm:"column:impact_details"`
	MediaURLs             MediaURLs   `json:"media_urls" gorm:"column:media_urls;type:json"`
	BankDetails           BankDetails `json:"bank_details" gorm:"column:bank_details;type:json;not null"`
	TransparencyStatement *string     `json:"transparency_statement,omitempty" gorm:"column:transparency_statement"`
	Status                string      `json:"status" gorm:"default:active"`
	CurrentAmount         float64     `json:"current_amount" gorm:"column:current_amount;type:numeric(12,2);default:0"`
	CreatedAt             time.Time   `json:"created_at" gorm:"column:created_at"`
	UpdatedAt             time.Time   `json:"updated_at" gorm:"column:updated_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// CanTransitionTo enforces the administrative status moves: an active
// campaign may be completed or cancelled, terminal states stay put.
func (c *Campaign) CanTransitionTo(status string) bool {
	if c.Status != StatusActive {
		return false
	}
	return status == StatusCompleted || status == StatusCancelled
}

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusCompleted || status == StatusCancelled
}
