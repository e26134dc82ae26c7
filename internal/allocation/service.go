package allocation

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

// Repository defines the data access methods for fund allocations
type Repository interface {
	Create(a *Allocation) error
	GetByID(id int64) (*Allocation, error)
	GetByCampaignID(campaignID int64) ([]*Allocation, error)
	UpdateStatus(id int64, status string) error
	CampaignExists(campaignID int64) (bool, error)
}

// Service handles fund allocation business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateAllocation earmarks campaign funds for a purpose. New allocations
// default to planned unless the payload says otherwise.
func (s *Service) CreateAllocation(dto CreateAllocationDTO) (*Allocation, error) {
	allocationDate, verr := dto.Validate()
	if verr != nil {
		s.logger.Warn("allocation validation failed", "error", verr.GetDetailedMessage(), "campaign_id", dto.CampaignID)
		return nil, verr
	}

	exists, err := s.repo.CampaignExists(dto.CampaignID)
	if err != nil {
		s.logger.Error("failed to check campaign existence", "error", err, "campaign_id", dto.CampaignID)
		return nil, internal.NewStorageError("failed to verify campaign", err)
	}
	if !exists {
		return nil, internal.ErrCampaignNotFound
	}

	status := dto.Status
	if status == "" {
		status = StatusPlanned
	}

	now := time.Now()
	a := &Allocation{
		CampaignID:     dto.CampaignID,
		Amount:         dto.Amount,
		Purpose:        dto.Purpose,
		AllocationDate: allocationDate,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create allocation", "error", err, "campaign_id", dto.CampaignID)
		return nil, internal.NewStorageError("failed to create fund allocation", err)
	}

	s.logger.Info("fund allocation created",
		"allocation_id", a.ID,
		"campaign_id", a.CampaignID,
		"amount", a.Amount,
		"status", a.Status)

	return a, nil
}

// AllocationsForCampaign returns the campaign's allocations, most recent
// first.
func (s *Service) AllocationsForCampaign(campaignID int64) ([]*Allocation, error) {
	allocations, err := s.repo.GetByCampaignID(campaignID)
	if err != nil {
		s.logger.Error("failed to list allocations", "error", err, "campaign_id", campaignID)
		return nil, internal.NewStorageError("failed to fetch fund allocations", err)
	}
	return allocations, nil
}

// UpdateStatus moves an allocation forward: planned to allocated, allocated
// to spent. Reverse moves are rejected.
func (s *Service) UpdateStatus(id int64, dto UpdateStatusDTO) error {
	if verr := dto.Validate(); verr != nil {
		return verr
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrAllocationNotFound) {
			return internal.ErrAllocationNotFound
		}
		s.logger.Error("failed to fetch allocation", "error", err, "allocation_id", id)
		return internal.NewStorageError("failed to fetch allocation", err)
	}

	if !a.CanTransitionTo(dto.Status) {
		s.logger.Warn("rejected allocation status transition",
			"allocation_id", id,
			"from", a.Status,
			"to", dto.Status)
		return internal.NewValidationError("allocation cannot move from "+a.Status+" to "+dto.Status, internal.ErrCodeInvalidStatus)
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update allocation status", "error", err, "allocation_id", id)
		return internal.NewStorageError("failed to update allocation status", err)
	}

	s.logger.Info("allocation status updated", "allocation_id", id, "from", a.Status, "to", dto.Status)
	return nil
}
