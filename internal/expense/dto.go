package expense

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

const dateLayout = "2006-01-02"

// CreateExpenseDTO represents the request payload for recording an expense.
type CreateExpenseDTO struct {
	CampaignID  int64   `json:"campaign_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
	ExpenseDate string  `json:"expense_date"`
}

func (dto CreateExpenseDTO) Validate() (time.Time, *internal.AppError) {
	var expenseDate time.Time

	if dto.CampaignID <= 0 {
		return expenseDate, internal.NewValidationFieldError("campaign_id", "campaign_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return expenseDate, internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.Description == "" {
		return expenseDate, internal.NewValidationFieldError("description", "description is required", internal.ErrCodeValidationFailed)
	}
	if dto.Category == "" {
		return expenseDate, internal.NewValidationFieldError("category", "category is required", internal.ErrCodeValidationFailed)
	}

	expenseDate, err := time.Parse(dateLayout, dto.ExpenseDate)
	if err != nil {
		return expenseDate, internal.NewValidationFieldError("expense_date", "expense date must be a valid YYYY-MM-DD date", internal.ErrCodeInvalidDate)
	}

	return expenseDate, nil
}
