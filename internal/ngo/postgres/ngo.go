package postgres

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	"github.com/frahmantamala/donation-platform/internal/ngo"
	"gorm.io/gorm"
)

// NGORepository implements the ngo.Repository interface using GORM
type NGORepository struct {
	db *gorm.DB
}

func NewNGORepository(db *gorm.DB) ngo.Repository {
	return &NGORepository{db: db}
}

func (r *NGORepository) Exists(ngoID int64) (bool, error) {
	var count int64
	err := r.db.Model(&ngo.NGO{}).Where("id = ?", ngoID).Count(&count).Error
	return count > 0, err
}

func (r *NGORepository) CreateVerification(v *ngo.Verification) error {
	return r.db.Create(v).Error
}

func (r *NGORepository) LatestVerification(ngoID int64) (*ngo.Verification, error) {
	var v ngo.Verification
	err := r.db.Where("ngo_id = ?", ngoID).
		Order("submitted_at DESC").
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *NGORepository) GetVerification(id int64) (*ngo.Verification, error) {
	var v ngo.Verification
	err := r.db.Where("id = ?", id).First(&v).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *NGORepository) UpdateVerificationStatus(id int64, status string) error {
	return r.db.Model(&ngo.Verification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *NGORepository) SetVerified(ngoID int64, verified bool) error {
	return r.db.Model(&ngo.NGO{}).
		Where("id = ?", ngoID).
		Update("is_verified", verified).Error
}

func (r *NGORepository) IsVerified(ngoID int64) (bool, error) {
	var verified bool
	err := r.db.Model(&ngo.NGO{}).
		Select("is_verified").
		Where("id = ?", ngoID).
		Scan(&verified).Error
	return verified, err
}

// Search matches the term against the organization and contact names,
// case-insensitively, and attaches active-campaign aggregates. An empty term
// matches everything.
func (r *NGORepository) Search(term string) ([]*ngo.DirectoryEntry, error) {
	pattern := "%" + term + "%"

	var entries []*ngo.DirectoryEntry
	err := r.db.Table("ngos").
		Select(`ngos.id, ngos.name, ngos.email, ngos.organization_name,
			ngos.registration_number, ngos.phone, ngos.address, ngos.is_verified,
			COUNT(DISTINCT campaigns.id) AS active_campaigns,
			COALESCE(SUM(campaigns.current_amount), 0) AS total_funds_raised`).
		Joins("LEFT JOIN campaigns ON campaigns.ngo_id = ngos.id AND campaigns.status = ?", campaign.StatusActive).
		Where("LOWER(ngos.organization_name) LIKE LOWER(?) OR LOWER(ngos.name) LIKE LOWER(?)", pattern, pattern).
		Group("ngos.id, ngos.name, ngos.email, ngos.organization_name, ngos.registration_number, ngos.phone, ngos.address, ngos.is_verified").
		Order("ngos.organization_name ASC").
		Scan(&entries).Error
	return entries, err
}

// GetProfile loads the public profile in two queries: the aggregate row, then
// the campaign list.
func (r *NGORepository) GetProfile(ngoID int64) (*ngo.Profile, error) {
	var profile ngo.Profile
	err := r.db.Table("ngos").
		Select(`ngos.id, ngos.name, ngos.email, ngos.organization_name,
			ngos.registration_number, ngos.phone, ngos.address, ngos.is_verified,
			COUNT(DISTINCT CASE WHEN campaigns.status = ? THEN campaigns.id END) AS active_campaigns,
			COUNT(DISTINCT campaigns.id) AS total_campaigns,
			COALESCE(SUM(campaigns.current_amount), 0) AS total_funds_raised`, campaign.StatusActive).
		Joins("LEFT JOIN campaigns ON campaigns.ngo_id = ngos.id").
		Where("ngos.id = ?", ngoID).
		Group("ngos.id, ngos.name, ngos.email, ngos.organization_name, ngos.registration_number, ngos.phone, ngos.address, ngos.is_verified").
		Scan(&profile).Error
	if err != nil {
		return nil, err
	}

	var campaigns []ngo.ProfileCampaign
	err = r.db.Table("campaigns").
		Select("id, title, description, target_amount, current_amount, start_date, end_date, status, beneficiaries, impact_details, created_at").
		Where("ngo_id = ?", ngoID).
		Order("created_at DESC").
		Scan(&campaigns).Error
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []ngo.ProfileCampaign{}
	}
	profile.Campaigns = campaigns

	return &profile, nil
}
