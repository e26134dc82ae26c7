package postgres

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	"gorm.io/gorm"
)

// CampaignRepository implements the campaign.Repository interface using GORM
type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) campaign.Repository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(c *campaign.Campaign) error {
	return r.db.Create(c).Error
}

func (r *CampaignRepository) GetByID(id int64) (*campaign.Campaign, error) {
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

// GetByNGOID returns the NGO's campaigns newest first.
func (r *CampaignRepository) GetByNGOID(ngoID int64) ([]*campaign.Campaign, error) {
	var campaigns []*campaign.Campaign
	err := r.db.Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&campaign.Campaign{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *CampaignRepository) NGOExists(ngoID int64) (bool, error) {
	var count int64
	err := r.db.Table("ngos").Where("id = ?", ngoID).Count(&count).Error
	return count > 0, err
}
