package ngo

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

// Repository defines the data access methods for NGO profiles and their
// verification records
type Repository interface {
	Exists(ngoID int64) (bool, error)
	CreateVerification(v *Verification) error
	LatestVerification(ngoID int64) (*Verification, error)
	GetVerification(id int64) (*Verification, error)
	UpdateVerificationStatus(id int64, status string) error
	SetVerified(ngoID int64, verified bool) error
	IsVerified(ngoID int64) (bool, error)
	Search(term string) ([]*DirectoryEntry, error)
	GetProfile(ngoID int64) (*Profile, error)
}

// Service handles the NGO directory and the verification workflow
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// SubmitVerification stores a pending verification for the NGO. Resubmission
// is allowed; the latest record wins.
func (s *Service) SubmitVerification(ngoID int64, dto SubmitVerificationDTO) (*Verification, error) {
	if verr := dto.Validate(); verr != nil {
		s.logger.Warn("verification submission rejected", "error", verr.GetDetailedMessage(), "ngo_id", ngoID)
		return nil, verr
	}

	exists, err := s.repo.Exists(ngoID)
	if err != nil {
		s.logger.Error("failed to check NGO existence", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to verify NGO", err)
	}
	if !exists {
		return nil, internal.ErrNGONotFound
	}

	now := s.now()
	v := &Verification{
		NGOID:                   ngoID,
		RegistrationCertificate: dto.RegistrationCertificate,
		TaxExemptionCertificate: dto.TaxExemptionCertificate,
		GovernmentIDProof:       dto.GovernmentIDProof,
		AddressProof:            dto.AddressProof,
		Status:                  VerificationPending,
		SubmittedAt:             now,
		UpdatedAt:               now,
	}

	if err := s.repo.CreateVerification(v); err != nil {
		s.logger.Error("failed to store verification", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to store verification documents", err)
	}

	s.logger.Info("verification submitted", "verification_id", v.ID, "ngo_id", ngoID)

	return v, nil
}

// VerificationStatus returns the NGO's verified flag together with the latest
// submission, if any. An NGO with no submission yet sees an empty status.
func (s *Service) VerificationStatus(ngoID int64) (*VerificationState, error) {
	exists, err := s.repo.Exists(ngoID)
	if err != nil {
		s.logger.Error("failed to check NGO existence", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to verify NGO", err)
	}
	if !exists {
		return nil, internal.ErrNGONotFound
	}

	verified, err := s.repo.IsVerified(ngoID)
	if err != nil {
		s.logger.Error("failed to read verified flag", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to read verification status", err)
	}

	state := &VerificationState{IsVerified: verified}

	v, err := s.repo.LatestVerification(ngoID)
	if err == nil && v != nil {
		state.Status = v.Status
		submittedAt := v.SubmittedAt
		state.SubmittedAt = &submittedAt
	}

	return state, nil
}

// ReviewVerification records the administrative decision. Approval also flips
// the NGO's verified flag; rejection clears it.
func (s *Service) ReviewVerification(verificationID int64, dto ReviewVerificationDTO) error {
	v, err := s.repo.GetVerification(verificationID)
	if err != nil {
		if errors.Is(err, internal.ErrVerificationNotFound) {
			return internal.ErrVerificationNotFound
		}
		s.logger.Error("failed to fetch verification", "error", err, "verification_id", verificationID)
		return internal.NewStorageError("failed to fetch verification", err)
	}

	status := VerificationRejected
	if dto.Approve {
		status = VerificationApproved
	}

	if err := s.repo.UpdateVerificationStatus(verificationID, status); err != nil {
		s.logger.Error("failed to update verification status", "error", err, "verification_id", verificationID)
		return internal.NewStorageError("failed to update verification status", err)
	}

	if err := s.repo.SetVerified(v.NGOID, dto.Approve); err != nil {
		s.logger.Error("failed to update NGO verified flag", "error", err, "ngo_id", v.NGOID)
		return internal.NewStorageError("failed to update NGO verified flag", err)
	}

	s.logger.Info("verification reviewed",
		"verification_id", verificationID,
		"ngo_id", v.NGOID,
		"status", status)

	return nil
}

// SearchNGOs returns directory entries whose organization or contact name
// matches the term, ordered by organization name. An empty term lists all.
func (s *Service) SearchNGOs(term string) ([]*DirectoryEntry, error) {
	entries, err := s.repo.Search(term)
	if err != nil {
		s.logger.Error("failed to search NGOs", "error", err, "term", term)
		return nil, internal.NewStorageError("failed to search NGOs", err)
	}
	return entries, nil
}

// NGODetails returns the public profile with campaign aggregates and the
// campaign list, newest first.
func (s *Service) NGODetails(ngoID int64) (*Profile, error) {
	exists, err := s.repo.Exists(ngoID)
	if err != nil {
		s.logger.Error("failed to check NGO existence", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to load NGO profile", err)
	}
	if !exists {
		return nil, internal.ErrNGONotFound
	}

	profile, err := s.repo.GetProfile(ngoID)
	if err != nil {
		s.logger.Error("failed to load NGO profile", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to load NGO profile", err)
	}
	return profile, nil
}
