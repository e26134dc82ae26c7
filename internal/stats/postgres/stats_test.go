package postgres

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/donation"
	donationdb "github.com/frahmantamala/donation-platform/internal/donation/postgres"
	"github.com/frahmantamala/donation-platform/internal/stats"
)

func TestStatsRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "StatsRepository Suite")
}

type SQLiteNGO struct {
	ID               int64  `gorm:"primaryKey"`
	OrganizationName string `gorm:"column:organization_name"`
}

func (SQLiteNGO) TableName() string {
	return "ngos"
}

type SQLiteCampaign struct {
	ID            int64   `gorm:"primaryKey"`
	NGOID         int64   `gorm:"column:ngo_id"`
	Title         string  `gorm:"column:title"`
	TargetAmount  float64 `gorm:"column:target_amount"`
	Status        string  `gorm:"column:status"`
	CurrentAmount float64 `gorm:"column:current_amount"`
}

func (SQLiteCampaign) TableName() string {
	return "campaigns"
}

type SQLiteDonation struct {
	ID            int64     `gorm:"primaryKey"`
	CampaignID    int64     `gorm:"column:campaign_id"`
	DonorID       *int64    `gorm:"column:donor_id"`
	Amount        float64   `gorm:"column:amount"`
	PaymentMethod string    `gorm:"column:payment_method"`
	IsAnonymous   bool      `gorm:"column:is_anonymous"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (SQLiteDonation) TableName() string {
	return "donations"
}

type SQLiteExpense struct {
	ID          int64     `gorm:"primaryKey"`
	CampaignID  int64     `gorm:"column:campaign_id"`
	Amount      float64   `gorm:"column:amount"`
	Description string    `gorm:"column:description"`
	Category    string    `gorm:"column:category"`
	ExpenseDate time.Time `gorm:"column:expense_date"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (SQLiteExpense) TableName() string {
	return "expenses"
}

type SQLiteAllocation struct {
	ID         int64   `gorm:"primaryKey"`
	CampaignID int64   `gorm:"column:campaign_id"`
	Amount     float64 `gorm:"column:amount"`
	Purpose    string  `gorm:"column:purpose"`
	Status     string  `gorm:"column:status"`
}

func (SQLiteAllocation) TableName() string {
	return "fund_allocations"
}

var _ = Describe("StatsRepository", func() {
	var (
		db      *gorm.DB
		repo    stats.Repository
		service *stats.Service
	)

	BeforeEach(func() {
		var err error

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&SQLiteNGO{}, &SQLiteCampaign{}, &SQLiteDonation{}, &SQLiteExpense{}, &SQLiteAllocation{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.Create(&SQLiteNGO{ID: 1, OrganizationName: "Helping Hands"}).Error).NotTo(HaveOccurred())
		Expect(db.Create(&SQLiteCampaign{ID: 1, NGOID: 1, Title: "Clean Water", TargetAmount: 10000, Status: "active"}).Error).NotTo(HaveOccurred())

		repo = NewStatsRepository(db)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = stats.NewService(repo, logger)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).NotTo(HaveOccurred())
	})

	Describe("CampaignByID", func() {
		It("should map a missing campaign to the not-found sentinel", func() {
			_, err := repo.CampaignByID(99)
			Expect(err).To(Equal(internal.ErrCampaignNotFound))
		})
	})

	Describe("CampaignSummary", func() {
		It("should reflect donations, expenses and allocations end to end", func() {
			donationRepo := donationdb.NewDonationRepository(db)
			for _, amount := range []float64{3000, 7000} {
				err := donationRepo.SubmitCompleted(&donation.Donation{
					CampaignID:    1,
					Amount:        amount,
					PaymentMethod: "card",
					Status:        donation.StatusCompleted,
					CreatedAt:     time.Now(),
				})
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(db.Create(&SQLiteExpense{
				CampaignID:  1,
				Amount:      2000,
				Description: "Filtration units",
				Category:    "equipment",
				ExpenseDate: time.Now(),
				CreatedAt:   time.Now(),
			}).Error).NotTo(HaveOccurred())

			summary, err := service.CampaignSummary(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.CurrentAmount).To(Equal(10000.00))
			Expect(summary.TotalExpenses).To(Equal(2000.00))
			Expect(summary.AllocatedFunds).To(Equal(0.00))
		})

		It("should count only allocations in allocated status", func() {
			rows := []SQLiteAllocation{
				{CampaignID: 1, Amount: 500, Purpose: "Transport", Status: "planned"},
				{CampaignID: 1, Amount: 1200, Purpose: "Supplies", Status: "allocated"},
				{CampaignID: 1, Amount: 800, Purpose: "Staff", Status: "spent"},
			}
			for i := range rows {
				Expect(db.Create(&rows[i]).Error).NotTo(HaveOccurred())
			}

			summary, err := service.CampaignSummary(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.AllocatedFunds).To(Equal(1200.00))
		})

		It("should return zeros for a campaign with no rows anywhere", func() {
			summary, err := service.CampaignSummary(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.CurrentAmount).To(Equal(0.00))
			Expect(summary.TotalExpenses).To(Equal(0.00))
			Expect(summary.AllocatedFunds).To(Equal(0.00))
		})
	})

	Describe("NGOStatistics", func() {
		It("should total donations and expenses without double counting", func() {
			feb := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
			mar := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

			donations := []SQLiteDonation{
				{CampaignID: 1, Amount: 3000, PaymentMethod: "card", Status: "completed", CreatedAt: feb},
				{CampaignID: 1, Amount: 4000, PaymentMethod: "card", Status: "completed", CreatedAt: feb.AddDate(0, 0, 5)},
				{CampaignID: 1, Amount: 3000, PaymentMethod: "card", Status: "completed", CreatedAt: mar},
				{CampaignID: 1, Amount: 999, PaymentMethod: "card", Status: "pending", CreatedAt: mar},
			}
			for i := range donations {
				Expect(db.Create(&donations[i]).Error).NotTo(HaveOccurred())
			}

			expenses := []SQLiteExpense{
				{CampaignID: 1, Amount: 1500, Description: "Units", Category: "equipment", ExpenseDate: feb, CreatedAt: feb},
				{CampaignID: 1, Amount: 500, Description: "Fuel", Category: "logistics", ExpenseDate: mar, CreatedAt: mar},
			}
			for i := range expenses {
				Expect(db.Create(&expenses[i]).Error).NotTo(HaveOccurred())
			}

			statistics, err := service.NGOStatistics(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(statistics.TotalDonations).To(Equal(10000.00))
			Expect(statistics.TotalExpenses).To(Equal(2000.00))
			Expect(statistics.ActiveCampaigns).To(Equal(int64(1)))
			Expect(statistics.CompletedCampaigns).To(Equal(int64(0)))

			Expect(statistics.MonthlyDonations).To(Equal([]stats.MonthlyDonations{
				{Month: "2026-02", Amount: 7000},
				{Month: "2026-03", Amount: 3000},
			}))

			Expect(statistics.ExpenseCategories).To(ConsistOf(
				stats.CategoryExpenses{Category: "equipment", Amount: 1500},
				stats.CategoryExpenses{Category: "logistics", Amount: 500},
			))
		})
	})
})
