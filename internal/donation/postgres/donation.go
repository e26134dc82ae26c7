package postgres

import (
	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/donation"
	"gorm.io/gorm"
)

// DonationRepository implements the donation.Repository interface using GORM
type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) donation.Repository {
	return &DonationRepository{db: db}
}

// SubmitCompleted inserts the donation and increments the campaign balance in
// one transaction. The relative UPDATE takes the campaign row lock, so
// concurrent submissions serialize and no increment is lost. If the campaign
// row vanished between the existence check and the commit, the whole
// transaction rolls back.
func (r *DonationRepository) SubmitCompleted(d *donation.Donation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}

		res := tx.Table("campaigns").
			Where("id = ?", d.CampaignID).
			Update("current_amount", gorm.Expr("current_amount + ?", d.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrCampaignNotFound
		}

		return nil
	})
}

func (r *DonationRepository) CampaignExists(campaignID int64) (bool, error) {
	var count int64
	err := r.db.Table("campaigns").Where("id = ?", campaignID).Count(&count).Error
	return count > 0, err
}

func (r *DonationRepository) GetForDonor(donorID int64) ([]*donation.DonorDonation, error) {
	var rows []*donation.DonorDonation
	err := r.db.Table("donations").
		Select("donations.*, campaigns.title AS campaign_title, ngos.organization_name AS ngo_name").
		Joins("JOIN campaigns ON donations.campaign_id = campaigns.id").
		Joins("JOIN ngos ON campaigns.ngo_id = ngos.id").
		Where("donations.donor_id = ?", donorID).
		Order("donations.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// GetForCampaign lists completed donations; anonymous rows are filtered out
// unless asked for. Name masking happens in the service.
func (r *DonationRepository) GetForCampaign(campaignID int64, includeAnonymous bool) ([]*donation.CampaignDonation, error) {
	q := r.db.Table("donations").
		Select("donations.id, donations.amount, donations.is_anonymous, donations.created_at, COALESCE(donors.name, '') AS donor_name").
		Joins("LEFT JOIN donors ON donations.donor_id = donors.id").
		Where("donations.campaign_id = ? AND donations.status = ?", campaignID, donation.StatusCompleted)

	if !includeAnonymous {
		q = q.Where("donations.is_anonymous = ?", false)
	}

	var rows []*donation.CampaignDonation
	err := q.Order("donations.created_at DESC").Scan(&rows).Error
	return rows, err
}
