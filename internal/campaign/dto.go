package campaign

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

const dateLayout = "2006-01-02"

// CreateCampaignDTO represents the request payload for creating a campaign.
// Dates arrive as YYYY-MM-DD strings.
type CreateCampaignDTO struct {
	NGOID                 int64       `json:"ngo_id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	TargetAmount          float64     `json:"target_amount"`
	StartDate             string      `json:"start_date"`
	EndDate               string      `json:"end_date"`
	Beneficiaries         *string     `json:"beneficiaries,omitempty"`
	ImpactDetails         *string     `json:"impact_details,omitempty"`
	MediaURLs             []string    `json:"media_urls,omitempty"`
	BankDetails           BankDetails `json:"bank_details"`
	TransparencyStatement *string     `json:"transparency_statement,omitempty"`
}

// Validate checks the payload and returns the parsed date range. The error
// names the first offending field so the API reports what to fix.
func (dto CreateCampaignDTO) Validate(today time.Time) (start, end time.Time, err *internal.AppError) {
	if dto.NGOID <= 0 {
		return start, end, internal.NewValidationFieldError("ngo_id", "ngo_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Title == "" {
		return start, end, internal.NewValidationFieldError("title", "title is required", internal.ErrCodeValidationFailed)
	}
	if dto.Description == "" {
		return start, end, internal.NewValidationFieldError("description", "description is required", internal.ErrCodeValidationFailed)
	}
	if dto.TargetAmount <= 0 {
		return start, end, internal.NewValidationFieldError("target_amount", "target amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}

	start, perr := time.Parse(dateLayout, dto.StartDate)
	if perr != nil {
		return start, end, internal.NewValidationFieldError("start_date", "start date must be a valid YYYY-MM-DD date", internal.ErrCodeInvalidDate)
	}
	end, perr = time.Parse(dateLayout, dto.EndDate)
	if perr != nil {
		return start, end, internal.NewValidationFieldError("end_date", "end date must be a valid YYYY-MM-DD date", internal.ErrCodeInvalidDate)
	}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(todayDate) {
		return start, end, internal.NewValidationFieldError("start_date", "start date cannot be in the past", internal.ErrCodeInvalidDate)
	}
	if !end.After(start) {
		return start, end, internal.NewValidationFieldError("end_date", "end date must be after start date", internal.ErrCodeInvalidDate)
	}

	switch {
	case dto.BankDetails.AccountName == "":
		return start, end, internal.NewValidationFieldError("bank_details.account_name", "account name is required", internal.ErrCodeValidationFailed)
	case dto.BankDetails.AccountNumber == "":
		return start, end, internal.NewValidationFieldError("bank_details.account_number", "account number is required", internal.ErrCodeValidationFailed)
	case dto.BankDetails.BankName == "":
		return start, end, internal.NewValidationFieldError("bank_details.bank_name", "bank name is required", internal.ErrCodeValidationFailed)
	case dto.BankDetails.RoutingCode == "":
		return start, end, internal.NewValidationFieldError("bank_details.routing_code", "routing code is required", internal.ErrCodeValidationFailed)
	}

	return start, end, nil
}

// UpdateStatusDTO represents the administrative status change request.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

func (dto UpdateStatusDTO) Validate() *internal.AppError {
	if dto.Status == "" {
		return internal.NewValidationFieldError("status", "status is required", internal.ErrCodeValidationFailed)
	}
	if !ValidStatus(dto.Status) {
		return internal.NewValidationFieldError("status", "status must be one of active, completed, cancelled", internal.ErrCodeInvalidStatus)
	}
	return nil
}
