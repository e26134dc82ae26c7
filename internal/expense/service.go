package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
)

// Repository defines the data access methods for expenses
type Repository interface {
	Create(e *Expense) error
	GetByCampaignID(campaignID int64) ([]*Expense, error)
	CampaignExists(campaignID int64) (bool, error)
}

// Service handles expense business logic
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

// RecordExpense appends a spend entry to the campaign's expense log.
func (s *Service) RecordExpense(dto CreateExpenseDTO) (*Expense, error) {
	expenseDate, verr := dto.Validate()
	if verr != nil {
		s.logger.Warn("expense validation failed", "error", verr.GetDetailedMessage(), "campaign_id", dto.CampaignID)
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

	e := &Expense{
		CampaignID:  dto.CampaignID,
		Amount:      dto.Amount,
		Description: dto.Description,
		Category:    dto.Category,
		ReceiptURL:  dto.ReceiptURL,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to record expense", "error", err, "campaign_id", dto.CampaignID)
		return nil, internal.NewStorageError("failed to record expense", err)
	}

	s.logger.Info("expense recorded",
		"expense_id", e.ID,
		"campaign_id", e.CampaignID,
		"amount", e.Amount,
		"category", e.Category)

	return e, nil
}

// ExpensesForCampaign returns the campaign's expenses, most recent spend
// first.
func (s *Service) ExpensesForCampaign(campaignID int64) ([]*Expense, error) {
	expenses, err := s.repo.GetByCampaignID(campaignID)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "campaign_id", campaignID)
		return nil, internal.NewStorageError("failed to fetch expenses", err)
	}
	return expenses, nil
}
