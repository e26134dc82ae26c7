package postgres

import (
	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/allocation"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	"github.com/frahmantamala/donation-platform/internal/donation"
	"github.com/frahmantamala/donation-platform/internal/stats"
	"gorm.io/gorm"
)

// StatsRepository implements the stats.Repository interface using GORM.
// Expense and allocation totals run as independent aggregate queries rather
// than one joined query, so a campaign with rows in both tables is never
// double-counted.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) stats.Repository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CampaignByID(id int64) (*campaign.Campaign, error) {
	var c campaign.Campaign
	err := r.db.Where("id = ?", id).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrCampaignNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *StatsRepository) CampaignTotals(campaignID int64) (totalExpenses, allocatedFunds float64, err error) {
	err = r.db.Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ?", campaignID).
		Scan(&totalExpenses).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Table("fund_allocations").
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ? AND status = ?", campaignID, allocation.StatusAllocated).
		Scan(&allocatedFunds).Error
	if err != nil {
		return 0, 0, err
	}

	return totalExpenses, allocatedFunds, nil
}

func (r *StatsRepository) NGOExists(ngoID int64) (bool, error) {
	var count int64
	err := r.db.Table("ngos").Where("id = ?", ngoID).Count(&count).Error
	return count > 0, err
}

func (r *StatsRepository) CampaignCounts(ngoID int64) (active, completed int64, err error) {
	err = r.db.Model(&campaign.Campaign{}).
		Where("ngo_id = ? AND status = ?", ngoID, campaign.StatusActive).
		Count(&active).Error
	if err != nil {
		return 0, 0, err
	}

	err = r.db.Model(&campaign.Campaign{}).
		Where("ngo_id = ? AND status = ?", ngoID, campaign.StatusCompleted).
		Count(&completed).Error
	return active, completed, err
}

func (r *StatsRepository) DonationTotal(ngoID int64) (float64, error) {
	var total float64
	err := r.db.Table("donations").
		Select("COALESCE(SUM(donations.amount), 0)").
		Joins("JOIN campaigns ON donations.campaign_id = campaigns.id").
		Where("campaigns.ngo_id = ? AND donations.status = ?", ngoID, donation.StatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *StatsRepository) ExpenseTotal(ngoID int64) (float64, error) {
	var total float64
	err := r.db.Table("expenses").
		Select("COALESCE(SUM(expenses.amount), 0)").
		Joins("JOIN campaigns ON expenses.campaign_id = campaigns.id").
		Where("campaigns.ngo_id = ?", ngoID).
		Scan(&total).Error
	return total, err
}

func (r *StatsRepository) CompletedDonations(ngoID int64) ([]stats.DonationRecord, error) {
	var rows []stats.DonationRecord
	err := r.db.Table("donations").
		Select("donations.amount, donations.created_at").
		Joins("JOIN campaigns ON donations.campaign_id = campaigns.id").
		Where("campaigns.ngo_id = ? AND donations.status = ?", ngoID, donation.StatusCompleted).
		Scan(&rows).Error
	return rows, err
}

func (r *StatsRepository) ExpensesByCategory(ngoID int64) ([]stats.CategoryExpenses, error) {
	var rows []stats.CategoryExpenses
	err := r.db.Table("expenses").
		Select("expenses.category, COALESCE(SUM(expenses.amount), 0) AS amount").
		Joins("JOIN campaigns ON expenses.campaign_id = campaigns.id").
		Where("campaigns.ngo_id = ?", ngoID).
		Group("expenses.category").
		Order("amount DESC").
		Scan(&rows).Error
	return rows, err
}
