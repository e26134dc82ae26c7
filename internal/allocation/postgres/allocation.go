package postgres

import (
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/allocation"
	"gorm.io/gorm"
)

// AllocationRepository implements the allocation.Repository interface using GORM
type AllocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) allocation.Repository {
	return &AllocationRepository{db: db}
}

func (r *AllocationRepository) Create(a *allocation.Allocation) error {
	return r.db.Create(a).Error
}

func (r *AllocationRepository) GetByID(id int64) (*allocation.Allocation, error) {
	var a allocation.Allocation
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrAllocationNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AllocationRepository) GetByCampaignID(campaignID int64) ([]*allocation.Allocation, error) {
	var allocations []*allocation.Allocation
	err := r.db.Where("campaign_id = ?", campaignID).
		Order("allocation_date DESC").
		Find(&allocations).Error
	return allocations, err
}

func (r *AllocationRepository) UpdateStatus(id int64, status string) error {
	return r.db.Model(&allocation.Allocation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *AllocationRepository) CampaignExists(campaignID int64) (bool, error) {
	var count int64
	err := r.db.Table("campaigns").Where("id = ?", campaignID).Count(&count).Error
	return count > 0, err
}
