package allocation_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/allocation"
)

func TestAllocationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AllocationService Suite")
}

// Mock repository for testing
type mockAllocationRepository struct {
	allocations map[int64]*allocation.Allocation
	campaigns   map[int64]bool
	createError error
	getError    error
	updateError error
	nextID      int64
}

func newMockAllocationRepository() *mockAllocationRepository {
	return &mockAllocationRepository{
		allocations: make(map[int64]*allocation.Allocation),
		campaigns:   map[int64]bool{1: true},
		nextID:      1,
	}
}

func (m *mockAllocationRepository) Create(a *allocation.Allocation) error {
	if m.createError != nil {
		return m.createError
	}
	a.ID = m.nextID
	m.nextID++
	m.allocations[a.ID] = a
	return nil
}

func (m *mockAllocationRepository) GetByID(id int64) (*allocation.Allocation, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	a, ok := m.allocations[id]
	if !ok {
		return nil, internal.ErrAllocationNotFound
	}
	return a, nil
}

func (m *mockAllocationRepository) GetByCampaignID(campaignID int64) ([]*allocation.Allocation, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	out := make([]*allocation.Allocation, 0)
	for _, a := range m.allocations {
		if a.CampaignID == campaignID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAllocationRepository) UpdateStatus(id int64, status string) error {
	if m.updateError != nil {
		return m.updateError
	}
	if a, ok := m.allocations[id]; ok {
		a.Status = status
	}
	return nil
}

func (m *mockAllocationRepository) CampaignExists(campaignID int64) (bool, error) {
	return m.campaigns[campaignID], nil
}

var _ = Describe("AllocationService", func() {
	var (
		service  *allocation.Service
		mockRepo *mockAllocationRepository
	)

	BeforeEach(func() {
		mockRepo = newMockAllocationRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = allocation.NewService(mockRepo, logger)
	})

	validDTO := func() allocation.CreateAllocationDTO {
		return allocation.CreateAllocationDTO{
			CampaignID:     1,
			Amount:         1500,
			Purpose:        "Medical supplies",
			AllocationDate: "2026-04-01",
		}
	}

	Describe("CreateAllocation", func() {
		It("should default a new allocation to planned", func() {
			a, err := service.CreateAllocation(validDTO())

			Expect(err).NotTo(HaveOccurred())
			Expect(a.ID).To(BeNumerically(">", 0))
			Expect(a.Status).To(Equal(allocation.StatusPlanned))
		})

		It("should honor an explicit starting status", func() {
			dto := validDTO()
			dto.Status = allocation.StatusAllocated

			a, err := service.CreateAllocation(dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Status).To(Equal(allocation.StatusAllocated))
		})

		It("should reject an invalid status value", func() {
			dto := validDTO()
			dto.Status = "reserved"

			_, err := service.CreateAllocation(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a non-positive amount", func() {
			dto := validDTO()
			dto.Amount = 0

			_, err := service.CreateAllocation(dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(mockRepo.allocations).To(BeEmpty())
		})

		It("should return not found for an unknown campaign", func() {
			dto := validDTO()
			dto.CampaignID = 99

			_, err := service.CreateAllocation(dto)
			Expect(err).To(Equal(internal.ErrCampaignNotFound))
		})
	})

	Describe("UpdateStatus", func() {
		var created *allocation.Allocation

		BeforeEach(func() {
			var err error
			created, err = service.CreateAllocation(validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should move planned to allocated and allocated to spent", func() {
			Expect(service.UpdateStatus(created.ID, allocation.UpdateStatusDTO{Status: allocation.StatusAllocated})).To(Succeed())
			Expect(mockRepo.allocations[created.ID].Status).To(Equal(allocation.StatusAllocated))

			Expect(service.UpdateStatus(created.ID, allocation.UpdateStatusDTO{Status: allocation.StatusSpent})).To(Succeed())
			Expect(mockRepo.allocations[created.ID].Status).To(Equal(allocation.StatusSpent))
		})

		It("should refuse to skip from planned straight to spent", func() {
			err := service.UpdateStatus(created.ID, allocation.UpdateStatusDTO{Status: allocation.StatusSpent})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(mockRepo.allocations[created.ID].Status).To(Equal(allocation.StatusPlanned))
		})

		It("should refuse to move backwards", func() {
			Expect(service.UpdateStatus(created.ID, allocation.UpdateStatusDTO{Status: allocation.StatusAllocated})).To(Succeed())

			err := service.UpdateStatus(created.ID, allocation.UpdateStatusDTO{Status: allocation.StatusPlanned})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should return not found for an unknown allocation", func() {
			err := service.UpdateStatus(99, allocation.UpdateStatusDTO{Status: allocation.StatusAllocated})
			Expect(err).To(Equal(internal.ErrAllocationNotFound))
		})

		It("should wrap lookup failures instead of reporting not found", func() {
			mockRepo.getError = errors.New("connection reset")

			err := service.UpdateStatus(1, allocation.UpdateStatusDTO{Status: allocation.StatusAllocated})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("AllocationsForCampaign", func() {
		It("should return the campaign's allocations", func() {
			_, err := service.CreateAllocation(validDTO())
			Expect(err).NotTo(HaveOccurred())

			allocations, err := service.AllocationsForCampaign(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(allocations).To(HaveLen(1))
		})

		It("should wrap repository failures", func() {
			mockRepo.getError = errors.New("connection reset")

			_, err := service.AllocationsForCampaign(1)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})
})
