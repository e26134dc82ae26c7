package campaign

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/core/events"
)

// Repository defines the data access methods for campaigns
type Repository interface {
	Create(c *Campaign) error
	GetByID(id int64) (*Campaign, error)
	GetByNGOID(ngoID int64) ([]*Campaign, error)
	UpdateStatus(id int64, status string) error
	NGOExists(ngoID int64) (bool, error)
}

// Service handles campaign business logic
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
		now:    time.Now,
	}
}

// CreateCampaign validates the payload and stores a new active campaign with
// a zero balance.
func (s *Service) CreateCampaign(dto CreateCampaignDTO) (*Campaign, error) {
	start, end, verr := dto.Validate(s.now())
	if verr != nil {
		s.logger.Warn("campaign validation failed", "error", verr.GetDetailedMessage(), "ngo_id", dto.NGOID)
		return nil, verr
	}

	exists, err := s.repo.NGOExists(dto.NGOID)
	if err != nil {
		s.logger.Error("failed to check NGO existence", "error", err, "ngo_id", dto.NGOID)
		return nil, internal.NewStorageError("failed to verify NGO", err)
	}
	if !exists {
		return nil, internal.ErrNGONotFound
	}

	now := s.now()
	c := &Campaign{
		NGOID:                 dto.NGOID,
		Title:                 dto.Title,
		Description:           dto.Description,
		TargetAmount:          dto.TargetAmount,
		StartDate:             start,
		EndDate:               end,
		Beneficiaries:         dto.Beneficiaries,
		ImpactDetails:         dto.ImpactDetails,
		MediaURLs:             MediaURLs(dto.MediaURLs),
		BankDetails:           dto.BankDetails,
		TransparencyStatement: dto.TransparencyStatement,
		Status:                StatusActive,
		CurrentAmount:         0,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create campaign", "error", err, "ngo_id", dto.NGOID)
		return nil, internal.NewStorageError("failed to create campaign", err)
	}

	s.logger.Info("campaign created",
		"campaign_id", c.ID,
		"ngo_id", c.NGOID,
		"target_amount", c.TargetAmount)

	return c, nil
}

// GetCampaign returns a single campaign by id.
func (s *Service) GetCampaign(id int64) (*Campaign, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrCampaignNotFound) {
			return nil, internal.ErrCampaignNotFound
		}
		s.logger.Error("failed to fetch campaign", "error", err, "campaign_id", id)
		return nil, internal.NewStorageError("failed to fetch campaign", err)
	}
	return c, nil
}

// CampaignsForNGO returns the NGO's campaigns, newest first.
func (s *Service) CampaignsForNGO(ngoID int64) ([]*Campaign, error) {
	campaigns, err := s.repo.GetByNGOID(ngoID)
	if err != nil {
		s.logger.Error("failed to list campaigns", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to list campaigns", err)
	}
	return campaigns, nil
}

// UpdateStatus applies an administrative status change. Only active
// campaigns move, and only to completed or cancelled.
func (s *Service) UpdateStatus(id int64, dto UpdateStatusDTO) error {
	if verr := dto.Validate(); verr != nil {
		return verr
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, internal.ErrCampaignNotFound) {
			return internal.ErrCampaignNotFound
		}
		s.logger.Error("failed to fetch campaign", "error", err, "campaign_id", id)
		return internal.NewStorageError("failed to fetch campaign", err)
	}

	if !c.CanTransitionTo(dto.Status) {
		s.logger.Warn("rejected campaign status transition",
			"campaign_id", id,
			"from", c.Status,
			"to", dto.Status)
		return internal.NewValidationError("campaign cannot move from "+c.Status+" to "+dto.Status, internal.ErrCodeInvalidStatus)
	}

	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		s.logger.Error("failed to update campaign status", "error", err, "campaign_id", id)
		return internal.NewStorageError("failed to update campaign status", err)
	}

	s.logger.Info("campaign status updated", "campaign_id", id, "from", c.Status, "to", dto.Status)

	if s.bus != nil {
		s.bus.Publish(context.Background(), events.NewCampaignStatusChangedEvent(id, c.Status, dto.Status))
	}

	return nil
}
