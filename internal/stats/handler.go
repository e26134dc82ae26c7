package stats

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CampaignSummary(campaignID int64) (*CampaignSummary, error)
	NGOStatistics(ngoID int64) (*NGOStatistics, error)
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

func (h *Handler) GetCampaignSummary(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	summary, serr := h.Service.CampaignSummary(campaignID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetNGOStatistics(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(chi.URLParam(r, "ngoID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid NGO ID")
		return
	}

	statistics, serr := h.Service.NGOStatistics(ngoID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, statistics)
}
