package donation

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/core/events"
)

// Repository defines the data access methods for the donation ledger.
// SubmitCompleted must insert the donation and increment the owning
// campaign's current_amount in one transaction; on any failure neither write
// may be visible.
type Repository interface {
	SubmitCompleted(d *Donation) error
	CampaignExists(campaignID int64) (bool, error)
	GetForDonor(donorID int64) ([]*DonorDonation, error)
	GetForCampaign(campaignID int64, includeAnonymous bool) ([]*CampaignDonation, error)
}

// Service is the donation ledger: it records donations and keeps campaign
// balances consistent with them.
type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// SubmitDonation records a donation and reflects it in the campaign balance.
// Validation happens before any write; the insert and the balance increment
// commit atomically or not at all.
func (s *Service) SubmitDonation(dto SubmitDonationDTO) (*Donation, error) {
	if verr := dto.Validate(); verr != nil {
		s.logger.Warn("donation validation failed",
			"error", verr.GetDetailedMessage(),
			"campaign_id", dto.CampaignID)
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

	d := &Donation{
		CampaignID:    dto.CampaignID,
		DonorID:       dto.DonorID,
		Amount:        dto.Amount,
		PaymentMethod: dto.PaymentMethod,
		IsAnonymous:   dto.IsAnonymous,
		Status:        StatusCompleted,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.SubmitCompleted(d); err != nil {
		s.logger.Error("donation transaction failed",
			"error", err,
			"campaign_id", dto.CampaignID,
			"amount", dto.Amount)
		if appErr, ok := internal.IsAppError(err); ok {
			return nil, appErr
		}
		return nil, internal.NewTransactionError("failed to process donation", err)
	}

	s.logger.Info("donation completed",
		"donation_id", d.ID,
		"campaign_id", d.CampaignID,
		"amount", d.Amount,
		"anonymous", d.IsAnonymous)

	if s.bus != nil {
		s.bus.Publish(context.Background(),
			events.NewDonationCompletedEvent(d.ID, d.CampaignID, d.DonorID, d.Amount, d.IsAnonymous))
	}

	return d, nil
}

// DonationsForDonor returns the donor's full history, newest first, with
// campaign and NGO names joined in. The owning donor always sees their
// identity and anonymity flags as stored.
func (s *Service) DonationsForDonor(donorID int64) ([]*DonorDonation, error) {
	donations, err := s.repo.GetForDonor(donorID)
	if err != nil {
		s.logger.Error("failed to list donor donations", "error", err, "donor_id", donorID)
		return nil, internal.NewStorageError("failed to fetch donation history", err)
	}
	return donations, nil
}

// DonationsForCampaign returns the campaign's completed donations, newest
// first. Anonymous entries are excluded unless includeAnonymous is set, and
// their donor name is always masked.
func (s *Service) DonationsForCampaign(campaignID int64, includeAnonymous bool) ([]*CampaignDonation, error) {
	donations, err := s.repo.GetForCampaign(campaignID, includeAnonymous)
	if err != nil {
		s.logger.Error("failed to list campaign donations", "error", err, "campaign_id", campaignID)
		return nil, internal.NewStorageError("failed to fetch donations", err)
	}

	for _, d := range donations {
		if d.IsAnonymous {
			d.DonorName = AnonymousDonorName
		}
	}

	return donations, nil
}
