package campaign_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	"github.com/frahmantamala/donation-platform/internal/core/events"
)

func TestCampaignService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "CampaignService Suite")
}

// Mock repository for testing
type mockCampaignRepository struct {
	campaigns         map[int64]*campaign.Campaign
	ngos              map[int64]bool
	createError       error
	getError          error
	updateStatusError error
	existsError       error
	nextID            int64
}

func newMockCampaignRepository() *mockCampaignRepository {
	return &mockCampaignRepository{
		campaigns: make(map[int64]*campaign.Campaign),
		ngos:      map[int64]bool{1: true},
		nextID:    1,
	}
}

func (m *mockCampaignRepository) Create(c *campaign.Campaign) error {
	if m.createError != nil {
		return m.createError
	}
	c.ID = m.nextID
	m.nextID++
	m.campaigns[c.ID] = c
	return nil
}

func (m *mockCampaignRepository) GetByID(id int64) (*campaign.Campaign, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	c, ok := m.campaigns[id]
	if !ok {
		return nil, internal.ErrCampaignNotFound
	}
	return c, nil
}

func (m *mockCampaignRepository) GetByNGOID(ngoID int64) ([]*campaign.Campaign, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	out := make([]*campaign.Campaign, 0)
	for _, c := range m.campaigns {
		if c.NGOID == ngoID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCampaignRepository) UpdateStatus(id int64, status string) error {
	if m.updateStatusError != nil {
		return m.updateStatusError
	}
	if c, ok := m.campaigns[id]; ok {
		c.Status = status
	}
	return nil
}

func (m *mockCampaignRepository) NGOExists(ngoID int64) (bool, error) {
	if m.existsError != nil {
		return false, m.existsError
	}
	return m.ngos[ngoID], nil
}

func validCreateDTO() campaign.CreateCampaignDTO {
	return campaign.CreateCampaignDTO{
		NGOID:        1,
		Title:        "Clean Water for All",
		Description:  "Install water filtration units.",
		TargetAmount: 10000,
		StartDate:    "2030-01-01",
		EndDate:      "2030-06-30",
		BankDetails: campaign.BankDetails{
			AccountName:   "Helping Hands Foundation",
			AccountNumber: "1234567890",
			BankName:      "First National",
			RoutingCode:   "FNB-001",
		},
	}
}

var _ = Describe("CampaignService", func() {
	var (
		service  *campaign.Service
		mockRepo *mockCampaignRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockCampaignRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = campaign.NewService(mockRepo, events.NewEventBus(logger), logger)
	})

	Describe("CreateCampaign", func() {
		It("should create an active campaign with a zero balance", func() {
			c, err := service.CreateCampaign(validCreateDTO())

			Expect(err).NotTo(HaveOccurred())
			Expect(c.ID).To(BeNumerically(">", 0))
			Expect(c.Status).To(Equal(campaign.StatusActive))
			Expect(c.CurrentAmount).To(Equal(0.00))
		})

		It("should reject a non-positive target amount", func() {
			dto := validCreateDTO()
			dto.TargetAmount = 0

			_, err := service.CreateCampaign(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(mockRepo.campaigns).To(BeEmpty())
		})

		It("should reject an end date on or before the start date", func() {
			dto := validCreateDTO()
			dto.EndDate = dto.StartDate

			_, err := service.CreateCampaign(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("end date must be after start date"))
		})

		It("should reject a start date in the past", func() {
			dto := validCreateDTO()
			dto.StartDate = "2020-01-01"

			_, err := service.CreateCampaign(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("start date cannot be in the past"))
		})

		It("should reject incomplete bank details", func() {
			dto := validCreateDTO()
			dto.BankDetails.RoutingCode = ""

			_, err := service.CreateCampaign(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("routing code is required"))
		})

		It("should return not found for an unknown NGO", func() {
			dto := validCreateDTO()
			dto.NGOID = 42

			_, err := service.CreateCampaign(dto)
			Expect(err).To(Equal(internal.ErrNGONotFound))
		})
	})

	Describe("UpdateStatus", func() {
		var created *campaign.Campaign

		BeforeEach(func() {
			var err error
			created, err = service.CreateCampaign(validCreateDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should complete an active campaign", func() {
			err := service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: campaign.StatusCompleted})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.campaigns[created.ID].Status).To(Equal(campaign.StatusCompleted))
		})

		It("should cancel an active campaign", func() {
			err := service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: campaign.StatusCancelled})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.campaigns[created.ID].Status).To(Equal(campaign.StatusCancelled))
		})

		It("should refuse to move a completed campaign", func() {
			Expect(service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: campaign.StatusCompleted})).To(Succeed())

			err := service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: campaign.StatusCancelled})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject an unknown status value", func() {
			err := service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: "archived"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should return not found for an unknown campaign", func() {
			err := service.UpdateStatus(99, campaign.UpdateStatusDTO{Status: campaign.StatusCompleted})
			Expect(err).To(Equal(internal.ErrCampaignNotFound))
		})

		It("should wrap lookup failures instead of reporting not found", func() {
			mockRepo.getError = errors.New("connection reset")

			err := service.UpdateStatus(created.ID, campaign.UpdateStatusDTO{Status: campaign.StatusCompleted})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("GetCampaign", func() {
		It("should return not found for an unknown campaign", func() {
			_, err := service.GetCampaign(99)
			Expect(err).To(Equal(internal.ErrCampaignNotFound))
		})

		It("should wrap lookup failures instead of reporting not found", func() {
			mockRepo.getError = errors.New("connection reset")

			_, err := service.GetCampaign(1)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("CampaignsForNGO", func() {
		It("should return the NGO's campaigns", func() {
			_, err := service.CreateCampaign(validCreateDTO())
			Expect(err).NotTo(HaveOccurred())

			campaigns, err := service.CampaignsForNGO(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(campaigns).To(HaveLen(1))
		})

		It("should wrap repository failures", func() {
			mockRepo.getError = errors.New("connection reset")

			_, err := service.CampaignsForNGO(1)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})
})
