package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/donation-platform/internal/allocation"
	"github.com/frahmantamala/donation-platform/internal/auth"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	"github.com/frahmantamala/donation-platform/internal/donation"
	"github.com/frahmantamala/donation-platform/internal/expense"
	"github.com/frahmantamala/donation-platform/internal/ngo"
	"github.com/frahmantamala/donation-platform/internal/stats"
	"github.com/frahmantamala/donation-platform/internal/transport/middleware"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	NGO        *ngo.Handler
	Campaign   *campaign.Handler
	Donation   *donation.Handler
	Expense    *expense.Handler
	Allocation *allocation.Handler
	Stats      *stats.Handler
}

// RegisterAllRoutes mounts the API under /api. Donation submission and the
// read surface stay public; administrative status changes and verification
// review sit behind the auth middleware.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/donors", func(sr chi.Router) {
			sr.Post("/register", h.Auth.RegisterDonor)
			sr.Post("/login", h.Auth.LoginDonor)
		})

		r.Route("/ngos", func(sr chi.Router) {
			sr.Post("/register", h.Auth.RegisterNGO)
			sr.Post("/login", h.Auth.LoginNGO)
			sr.Get("/verified", h.NGO.SearchVerifiedNGOs)
			sr.Get("/{ngoID}", h.NGO.GetNGODetails)
			sr.Get("/{ngoID}/statistics", h.Stats.GetNGOStatistics)
			sr.Get("/{ngoID}/verification", h.NGO.GetVerificationStatus)
			sr.Post("/{ngoID}/verification", h.NGO.SubmitVerification)
		})

		r.Post("/auth/refresh", h.Auth.RefreshToken)

		r.Route("/campaigns", func(sr chi.Router) {
			sr.Post("/", h.Campaign.CreateCampaign)
			sr.Get("/ngo/{ngoID}", h.Campaign.GetCampaignsForNGO)
			sr.Get("/{id}/summary", h.Stats.GetCampaignSummary)
		})

		r.Route("/donations", func(sr chi.Router) {
			sr.Post("/", h.Donation.SubmitDonation)
			sr.Get("/donor/{donorID}", h.Donation.GetDonorDonations)
			sr.Get("/campaign/{campaignID}", h.Donation.GetCampaignDonations)
		})

		r.Route("/expenses", func(sr chi.Router) {
			sr.Post("/", h.Expense.RecordExpense)
			sr.Get("/campaign/{campaignID}", h.Expense.GetCampaignExpenses)
		})

		r.Route("/fund-allocations", func(sr chi.Router) {
			sr.Post("/", h.Allocation.CreateAllocation)
			sr.Get("/campaign/{campaignID}", h.Allocation.GetCampaignAllocations)
		})

		// Administrative surface
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Patch("/campaigns/{id}/status", h.Campaign.UpdateStatus)
			pr.Patch("/fund-allocations/{id}/status", h.Allocation.UpdateStatus)
			pr.Patch("/verifications/{id}/review", h.NGO.ReviewVerification)
		})
	})
}
