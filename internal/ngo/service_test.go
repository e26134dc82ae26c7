package ngo_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/ngo"
)

func TestNGOService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "NGOService Suite")
}

// Mock repository for testing
type mockNGORepository struct {
	ngos          map[int64]bool
	verified      map[int64]bool
	verifications map[int64]*ngo.Verification
	latest        map[int64]*ngo.Verification
	entries       []*ngo.DirectoryEntry
	profiles      map[int64]*ngo.Profile
	createError   error
	getError      error
	searchError   error
	nextID        int64
}

func newMockNGORepository() *mockNGORepository {
	return &mockNGORepository{
		ngos:          map[int64]bool{1: true},
		verified:      make(map[int64]bool),
		verifications: make(map[int64]*ngo.Verification),
		latest:        make(map[int64]*ngo.Verification),
		profiles:      make(map[int64]*ngo.Profile),
		nextID:        1,
	}
}

func (m *mockNGORepository) Exists(ngoID int64) (bool, error) {
	return m.ngos[ngoID], nil
}

func (m *mockNGORepository) CreateVerification(v *ngo.Verification) error {
	if m.createError != nil {
		return m.createError
	}
	v.ID = m.nextID
	m.nextID++
	m.verifications[v.ID] = v
	m.latest[v.NGOID] = v
	return nil
}

func (m *mockNGORepository) LatestVerification(ngoID int64) (*ngo.Verification, error) {
	v, ok := m.latest[ngoID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return v, nil
}

func (m *mockNGORepository) GetVerification(id int64) (*ngo.Verification, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	v, ok := m.verifications[id]
	if !ok {
		return nil, internal.ErrVerificationNotFound
	}
	return v, nil
}

func (m *mockNGORepository) UpdateVerificationStatus(id int64, status string) error {
	if v, ok := m.verifications[id]; ok {
		v.Status = status
	}
	return nil
}

func (m *mockNGORepository) SetVerified(ngoID int64, verified bool) error {
	m.verified[ngoID] = verified
	return nil
}

func (m *mockNGORepository) IsVerified(ngoID int64) (bool, error) {
	return m.verified[ngoID], nil
}

func (m *mockNGORepository) Search(term string) ([]*ngo.DirectoryEntry, error) {
	if m.searchError != nil {
		return nil, m.searchError
	}
	return m.entries, nil
}

func (m *mockNGORepository) GetProfile(ngoID int64) (*ngo.Profile, error) {
	p, ok := m.profiles[ngoID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func validSubmission() ngo.SubmitVerificationDTO {
	return ngo.SubmitVerificationDTO{
		RegistrationCertificate: "docs/reg-cert.pdf",
		GovernmentIDProof:       "docs/gov-id.pdf",
		AddressProof:            "docs/address.pdf",
	}
}

var _ = Describe("NGOService", func() {
	var (
		service  *ngo.Service
		mockRepo *mockNGORepository
	)

	BeforeEach(func() {
		mockRepo = newMockNGORepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = ngo.NewService(mockRepo, logger)
	})

	Describe("SubmitVerification", func() {
		It("should store a pending verification", func() {
			v, err := service.SubmitVerification(1, validSubmission())

			Expect(err).NotTo(HaveOccurred())
			Expect(v.ID).To(BeNumerically(">", 0))
			Expect(v.Status).To(Equal(ngo.VerificationPending))
		})

		It("should require the registration certificate", func() {
			dto := validSubmission()
			dto.RegistrationCertificate = ""

			_, err := service.SubmitVerification(1, dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(ContainSubstring("registration certificate is required"))
		})

		It("should allow the tax exemption certificate to be absent", func() {
			v, err := service.SubmitVerification(1, validSubmission())
			Expect(err).NotTo(HaveOccurred())
			Expect(v.TaxExemptionCertificate).To(BeNil())
		})

		It("should return not found for an unknown NGO", func() {
			_, err := service.SubmitVerification(99, validSubmission())
			Expect(err).To(Equal(internal.ErrNGONotFound))
		})
	})

	Describe("VerificationStatus", func() {
		It("should report an empty status before any submission", func() {
			state, err := service.VerificationStatus(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.IsVerified).To(BeFalse())
			Expect(state.Status).To(BeEmpty())
			Expect(state.SubmittedAt).To(BeNil())
		})

		It("should surface the latest submission", func() {
			v, err := service.SubmitVerification(1, validSubmission())
			Expect(err).NotTo(HaveOccurred())

			state, err := service.VerificationStatus(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Status).To(Equal(ngo.VerificationPending))
			Expect(state.SubmittedAt).NotTo(BeNil())
			Expect(state.SubmittedAt.Equal(v.SubmittedAt)).To(BeTrue())
		})

		It("should return not found for an unknown NGO", func() {
			_, err := service.VerificationStatus(99)
			Expect(err).To(Equal(internal.ErrNGONotFound))
		})
	})

	Describe("ReviewVerification", func() {
		var submitted *ngo.Verification

		BeforeEach(func() {
			var err error
			submitted, err = service.SubmitVerification(1, validSubmission())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should approve and flip the verified flag", func() {
			err := service.ReviewVerification(submitted.ID, ngo.ReviewVerificationDTO{Approve: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.verifications[submitted.ID].Status).To(Equal(ngo.VerificationApproved))
			Expect(mockRepo.verified[1]).To(BeTrue())
		})

		It("should reject and clear the verified flag", func() {
			err := service.ReviewVerification(submitted.ID, ngo.ReviewVerificationDTO{Approve: false})
			Expect(err).NotTo(HaveOccurred())
			Expect(mockRepo.verifications[submitted.ID].Status).To(Equal(ngo.VerificationRejected))
			Expect(mockRepo.verified[1]).To(BeFalse())
		})

		It("should return not found for an unknown verification", func() {
			err := service.ReviewVerification(99, ngo.ReviewVerificationDTO{Approve: true})
			Expect(err).To(Equal(internal.ErrVerificationNotFound))
		})

		It("should wrap lookup failures instead of reporting not found", func() {
			mockRepo.getError = errors.New("connection reset")

			err := service.ReviewVerification(submitted.ID, ngo.ReviewVerificationDTO{Approve: true})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("SearchNGOs", func() {
		It("should pass the directory through", func() {
			mockRepo.entries = []*ngo.DirectoryEntry{
				{ID: 1, OrganizationName: "Helping Hands", ActiveCampaigns: 2, TotalFundsRaised: 5000},
			}

			entries, err := service.SearchNGOs("help")
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].TotalFundsRaised).To(Equal(5000.00))
		})

		It("should wrap repository failures", func() {
			mockRepo.searchError = errors.New("connection reset")

			_, err := service.SearchNGOs("help")
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeStorage))
		})
	})

	Describe("NGODetails", func() {
		It("should return the profile for a known NGO", func() {
			mockRepo.profiles[1] = &ngo.Profile{
				DirectoryEntry: ngo.DirectoryEntry{ID: 1, OrganizationName: "Helping Hands"},
				TotalCampaigns: 3,
				Campaigns: []ngo.ProfileCampaign{
					{ID: 1, Title: "Clean Water", CreatedAt: time.Now()},
				},
			}

			profile, err := service.NGODetails(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.TotalCampaigns).To(Equal(int64(3)))
			Expect(profile.Campaigns).To(HaveLen(1))
		})

		It("should return not found for an unknown NGO", func() {
			_, err := service.NGODetails(99)
			Expect(err).To(Equal(internal.ErrNGONotFound))
		})
	})
})
