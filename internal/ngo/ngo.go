package ngo

import "time"

// Verification statuses. A submission starts pending and a review moves it to
// approved or rejected.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

type NGO struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"not null"`
	Email              string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash       string    `json:"-" gorm:"column:password_hash;not null"`
	OrganizationName   string    `json:"organization_name" gorm:"column:organization_name;not null"`
	RegistrationNumber *string   `json:"registration_number,omitempty" gorm:"column:registration_number"`
	Phone              *string   `json:"phone,omitempty"`
	Address            *string   `json:"address,omitempty"`
	IsVerified         bool      `json:"is_verified" gorm:"column:is_verified;default:false"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at"`
}

func (NGO) TableName() string {
	return "ngos"
}

// Verification holds the document references submitted for review. The
// certificate and proof fields are opaque storage references.
type Verification struct {
	ID                       int64     `json:"id" gorm:"primaryKey"`
	NGOID                    int64     `json:"ngo_id" gorm:"column:ngo_id;not null"`
	RegistrationCertificate  string    `json:"registration_certificate" gorm:"column:registration_certificate;not null"`
	TaxExemptionCertificate  *string   `json:"tax_exemption_certificate,omitempty" gorm:"column:tax_exemption_certificate"`
	GovernmentIDProof        string    `json:"government_id_proof" gorm:"column:government_id_proof;not null"`
	AddressProof             string    `json:"address_proof" gorm:"column:address_proof;not null"`
	Status                   string    `json:"status" gorm:"default:pending"`
	SubmittedAt              time.Time `json:"submitted_at" gorm:"column:submitted_at"`
	UpdatedAt                time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Verification) TableName() string {
	return "ngo_verifications"
}

// VerificationState is the status view an NGO sees for its own submission.
type VerificationState struct {
	IsVerified  bool       `json:"is_verified"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// DirectoryEntry is a row in the public NGO directory with campaign
// aggregates attached.
type DirectoryEntry struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	OrganizationName   string  `json:"organization_name"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	Address            *string `json:"address,omitempty"`
	IsVerified         bool    `json:"is_verified"`
	ActiveCampaigns    int64   `json:"active_campaigns"`
	TotalFundsRaised   float64 `json:"total_funds_raised"`
}

// Profile is the full public detail view: directory data plus the total
// campaign count and the campaign list itself.
type Profile struct {
	DirectoryEntry
	TotalCampaigns int64             `json:"total_campaigns"`
	Campaigns      []ProfileCampaign `json:"campaigns"`
}

// ProfileCampaign is the campaign shape embedded in a profile. Bank details
// stay out of the public view.
type ProfileCampaign struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	Beneficiaries *string   `json:"beneficiaries,omitempty"`
	ImpactDetails *string   `json:"impact_details,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
