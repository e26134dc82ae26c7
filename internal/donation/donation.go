package donation

import "time"

// Donation statuses. The success path records a donation already completed:
// there is no external payment gateway, so a donation either commits together
// with its balance increment or not at all. pending and failed exist for the
// wire format and for rows written by out-of-band tooling.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// AnonymousDonorName replaces the donor's name on campaign-facing listings
// for anonymous donations.
const AnonymousDonorName = "Anonymous Donor"

type Donation struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	CampaignID    int64     `json:"campaign_id" gorm:"column:campaign_id;not null"`
	DonorID       *int64    `json:"donor_id,omitempty" gorm:"column:donor_id"`
	Amount        float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	PaymentMethod string    `json:"payment_method" gorm:"column:payment_method;not null"`
	TransactionID *string   `json:"transaction_id,omitempty" gorm:"column:transaction_id"`
	IsAnonymous   bool      `json:"is_anonymous" gorm:"column:is_anonymous"`
	Status        string    `json:"status" gorm:"default:pending"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// DonorDonation is a ledger entry joined with campaign and NGO names, as
// shown on the donor's own history. The donor always sees their full record.
type DonorDonation struct {
	Donation
	CampaignTitle string `json:"campaign_title" gorm:"column:campaign_title"`
	NGOName       string `json:"ngo_name" gorm:"column:ngo_name"`
}

// CampaignDonation is the campaign-facing view of a completed donation.
// DonorName is masked for anonymous entries.
type CampaignDonation struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
	DonorName   string    `json:"donor_name"`
}
