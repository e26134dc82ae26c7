package donation

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	SubmitDonation(dto SubmitDonationDTO) (*Donation, error)
	DonationsForDonor(donorID int64) ([]*DonorDonation, error)
	DonationsForCampaign(campaignID int64, includeAnonymous bool) ([]*CampaignDonation, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.Default()),
		Service:     service,
	}
}

func (h *Handler) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	var dto SubmitDonationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitDonation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.Service.SubmitDonation(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Donation processed successfully",
		"donation_id": d.ID,
	})
}

func (h *Handler) GetDonorDonations(w http.ResponseWriter, r *http.Request) {
	donorID, err := strconv.ParseInt(chi.URLParam(r, "donorID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid donor ID")
		return
	}

	donations, serr := h.Service.DonationsForDonor(donorID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, donations)
}

func (h *Handler) GetCampaignDonations(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	includeAnonymous := r.URL.Query().Get("showAnonymous") == "true"

	donations, serr := h.Service.DonationsForCampaign(campaignID, includeAnonymous)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, donations)
}
