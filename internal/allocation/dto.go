package allocation

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

const dateLayout = "2006-01-02"

// CreateAllocationDTO represents the request payload for earmarking funds.
type CreateAllocationDTO struct {
	CampaignID     int64   `json:"campaign_id"`
	Amount         float64 `json:"amount"`
	Purpose        string  `json:"purpose"`
	AllocationDate string  `json:"allocation_date"`
	Status         string  `json:"status,omitempty"`
}

func (dto CreateAllocationDTO) Validate() (time.Time, *internal.AppError) {
	var allocationDate time.Time

	if dto.CampaignID <= 0 {
		return allocationDate, internal.NewValidationFieldError("campaign_id", "campaign_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return allocationDate, internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.Purpose == "" {
		return allocationDate, internal.NewValidationFieldError("purpose", "purpose is required", internal.ErrCodeValidationFailed)
	}
	if dto.Status != "" && !ValidStatus(dto.Status) {
		return allocationDate, internal.NewValidationFieldError("status", "status must be one of planned, allocated, spent", internal.ErrCodeInvalidStatus)
	}

	allocationDate, err := time.Parse(dateLayout, dto.AllocationDate)
	if err != nil {
		return allocationDate, internal.NewValidationFieldError("allocation_date", "allocation date must be a valid YYYY-MM-DD date", internal.ErrCodeInvalidDate)
	}

	return allocationDate, nil
}

// UpdateStatusDTO represents the status transition request.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() *internal.AppError {
	if dto.Status == "" {
		return internal.NewValidationFieldError("status", "status is required", internal.ErrCodeValidationFailed)
	}
	if !ValidStatus(dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of planned, allocated, spent", internal.ErrCodeInvalidStatus)
	}
	return nil
}
