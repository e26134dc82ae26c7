package auth

import (
	"strings"

	"github.com/frahmantamala/donation-platform/internal"
)

// RegisterDonorDTO represents the donor signup payload.
type RegisterDonorDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto RegisterDonorDTO) Validate() *internal.AppError {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if err := validateEmail(dto.Email); err != nil {
		return err
	}
	return validatePassword(dto.Password)
}

// RegisterNGODTO represents the NGO signup payload.
type RegisterNGODTO struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	OrganizationName   string  `json:"organization_name"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
}

func (dto RegisterNGODTO) Validate() *internal.AppError {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(dto.OrganizationName) == "" {
		return internal.NewValidationFieldError("organization_name", "organization name is required", internal.ErrCodeValidationFailed)
	}
	if err := validateEmail(dto.Email); err != nil {
		return err
	}
	return validatePassword(dto.Password)
}

// LoginDTO represents the login payload for both account types.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() *internal.AppError {
	if dto.Email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	if dto.Password == "" {
		return internal.NewValidationFieldError("password", "password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// RefreshTokenDTO represents the refresh request payload.
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshTokenDTO) Validate() *internal.AppError {
	if dto.RefreshToken == "" {
		return internal.NewValidationFieldError("refresh_token", "refresh token is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

func validateEmail(email string) *internal.AppError {
	email = strings.TrimSpace(email)
	if email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeValidationFailed)
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return internal.NewValidationFieldError("email", "email must be a valid address", internal.ErrCodeValidationFailed)
	}
	return nil
}

func validatePassword(password string) *internal.AppError {
	if len(password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}
