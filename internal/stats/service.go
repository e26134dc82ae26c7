package stats

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/campaign"
)

const monthLayout = "2006-01"

// Repository defines the read-side queries behind the aggregator. All
// methods are pure reads.
type Repository interface {
	CampaignByID(id int64) (*campaign.Campaign, error)
	CampaignTotals(campaignID int64) (totalExpenses, allocatedFunds float64, err error)
	NGOExists(ngoID int64) (bool, error)
	CampaignCounts(ngoID int64) (active, completed int64, err error)
	DonationTotal(ngoID int64) (float64, error)
	ExpenseTotal(ngoID int64) (float64, error)
	CompletedDonations(ngoID int64) ([]DonationRecord, error)
	ExpensesByCategory(ngoID int64) ([]CategoryExpenses, error)
}

// Service is the summary aggregator: consistent read-only financial views
// over campaigns, donations, expenses and allocations.
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

// CampaignSummary returns the campaign with its expense and allocated-fund
// totals.
func (s *Service) CampaignSummary(campaignID int64) (*CampaignSummary, error) {
	c, err := s.repo.CampaignByID(campaignID)
	if err != nil {
		if errors.Is(err, internal.ErrCampaignNotFound) {
			return nil, internal.ErrCampaignNotFound
		}
		s.logger.Error("failed to fetch campaign", "error", err, "campaign_id", campaignID)
		return nil, internal.NewStorageError("failed to fetch campaign summary", err)
	}

	totalExpenses, allocatedFunds, err := s.repo.CampaignTotals(campaignID)
	if err != nil {
		s.logger.Error("failed to aggregate campaign totals", "error", err, "campaign_id", campaignID)
		return nil, internal.NewStorageError("failed to fetch campaign summary", err)
	}

	return &CampaignSummary{
		Campaign:       *c,
		TotalExpenses:  totalExpenses,
		AllocatedFunds: allocatedFunds,
	}, nil
}

// NGOStatistics aggregates totals and chart breakdowns across the NGO's
// campaigns.
func (s *Service) NGOStatistics(ngoID int64) (*NGOStatistics, error) {
	exists, err := s.repo.NGOExists(ngoID)
	if err != nil {
		s.logger.Error("failed to check NGO existence", "error", err, "ngo_id", ngoID)
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}
	if !exists {
		return nil, internal.ErrNGONotFound
	}

	active, completed, err := s.repo.CampaignCounts(ngoID)
	if err != nil {
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}

	totalDonations, err := s.repo.DonationTotal(ngoID)
	if err != nil {
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}

	totalExpenses, err := s.repo.ExpenseTotal(ngoID)
	if err != nil {
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}

	donations, err := s.repo.CompletedDonations(ngoID)
	if err != nil {
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}

	categories, err := s.repo.ExpensesByCategory(ngoID)
	if err != nil {
		return nil, internal.NewStorageError("failed to fetch statistics", err)
	}
	if categories == nil {
		categories = []CategoryExpenses{}
	}

	return &NGOStatistics{
		TotalDonations:     totalDonations,
		TotalExpenses:      totalExpenses,
		ActiveCampaigns:    active,
		CompletedCampaigns: completed,
		MonthlyDonations:   groupByMonth(donations),
		ExpenseCategories:  categories,
	}, nil
}

// groupByMonth buckets completed donations by calendar month, oldest first.
// Grouping happens here rather than in SQL so the query stays portable
// across the postgres and sqlite dialects the repositories run on.
func groupByMonth(donations []DonationRecord) []MonthlyDonations {
	buckets := make(map[string]float64)
	for _, d := range donations {
		buckets[d.CreatedAt.Format(monthLayout)] += d.Amount
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	result := make([]MonthlyDonations, 0, len(months))
	for _, month := range months {
		result = append(result, MonthlyDonations{Month: month, Amount: buckets[month]})
	}
	return result
}
