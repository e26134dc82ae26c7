package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Donor is an account that submits donations. The password hash never leaves
// the package.
type Donor struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Donor) TableName() string {
	return "donors"
}

// TokenGenerator creates and validates the token pair.
type TokenGenerator interface {
	GenerateAccessToken(userID int64, userType string) (string, error)
	GenerateRefreshToken(userID int64, userType string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Claims carries the account id and type inside both token kinds.
type Claims struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// DonorProfile is the login response payload for donors.
type DonorProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NGOProfile is the login response payload for NGO accounts.
type NGOProfile struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	OrganizationName string `json:"organization_name"`
	IsVerified       bool   `json:"is_verified"`
}
