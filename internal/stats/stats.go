package stats

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal/campaign"
)

// CampaignSummary is the campaign's financial snapshot: the campaign record
// plus expense and allocated-fund totals. Totals are zero, never null, for
// campaigns without rows.
type CampaignSummary struct {
	campaign.Campaign
	TotalExpenses  float64 `json:"total_expenses"`
	AllocatedFunds float64 `json:"allocated_funds"`
}

type MonthlyDonations struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type CategoryExpenses struct {
	Category string  `json:"category" gorm:"column:category"`
	Amount   float64 `json:"amount" gorm:"column:amount"`
}

// NGOStatistics aggregates the financial state across all of an NGO's
// campaigns, shaped for the dashboard charts.
type NGOStatistics struct {
	TotalDonations     float64            `json:"total_donations"`
	TotalExpenses      float64            `json:"total_expenses"`
	ActiveCampaigns    int64              `json:"active_campaigns"`
	CompletedCampaigns int64              `json:"completed_campaigns"`
	MonthlyDonations   []MonthlyDonations `json:"monthly_donations"`
	ExpenseCategories  []CategoryExpenses `json:"expense_categories"`
}

// DonationRecord is the minimal completed-donation row the aggregator needs
// for the monthly breakdown.
type DonationRecord struct {
	Amount    float64   `gorm:"column:amount"`
	CreatedAt time.Time `gorm:"column:created_at"`
}
