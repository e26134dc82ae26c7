package donation

import "github.com/frahmantamala/donation-platform/internal"

// SubmitDonationDTO represents the request payload for submitting a donation.
// DonorID is nil for donations made without an account.
type SubmitDonationDTO struct {
	CampaignID    int64   `json:"campaign_id"`
	DonorID       *int64  `json:"donor_id,omitempty"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	IsAnonymous   bool    `json:"is_anonymous"`
}

func (dto SubmitDonationDTO) Validate() *internal.AppError {
	if dto.CampaignID <= 0 {
		return internal.NewValidationFieldError("campaign_id", "campaign_id is required", internal.ErrCodeValidationFailed)
	}
	if dto.Amount <= 0 {
		return internal.NewValidationFieldError("amount", "amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}
	if dto.PaymentMethod == "" {
		return internal.NewValidationFieldError("payment_method", "payment method is required", internal.ErrCodeValidationFailed)
	}
	if dto.DonorID != nil && *dto.DonorID <= 0 {
		return internal.NewValidationFieldError("donor_id", "donor_id must be a valid id", internal.ErrCodeValidationFailed)
	}
	return nil
}
