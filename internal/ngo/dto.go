package ngo

import "github.com/frahmantamala/donation-platform/internal"

// SubmitVerificationDTO carries the document references for a verification
// submission. The tax exemption certificate is the only optional document.
type SubmitVerificationDTO struct {
	RegistrationCertificate string  `json:"registration_certificate"`
	TaxExemptionCertificate *string `json:"tax_exemption_certificate,omitempty"`
	GovernmentIDProof       string  `json:"government_id_proof"`
	AddressProof            string  `json:"address_proof"`
}

func (dto SubmitVerificationDTO) Validate() *internal.AppError {
	if dto.RegistrationCertificate == "" {
		return internal.NewValidationFieldError("registration_certificate", "registration certificate is required", internal.ErrCodeValidationFailed)
	}
	if dto.GovernmentIDProof == "" {
		return internal.NewValidationFieldError("government_id_proof", "government ID proof is required", internal.ErrCodeValidationFailed)
	}
	if dto.AddressProof == "" {
		return internal.NewValidationFieldError("address_proof", "address proof is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// ReviewVerificationDTO represents the administrative review decision.
type ReviewVerificationDTO struct {
	Approve bool `json:"approve"`
}
