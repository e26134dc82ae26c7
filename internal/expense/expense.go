package expense

import "time"

// Expense is a spend recorded against a campaign. Rows are append-only and
// immutable; expenses never reduce the campaign's current_amount, which
// tracks funds raised rather than funds remaining.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CampaignID  int64     `json:"campaign_id" gorm:"column:campaign_id;not null"`
	Amount      float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	ReceiptURL  *string   `json:"receipt_url,omitempty" gorm:"column:receipt_url"`
	ExpenseDate time.Time `json:"expense_date" gorm:"column:expense_date;type:date"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
