package campaign

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateCampaign(dto CreateCampaignDTO) (*Campaign, error)
	GetCampaign(id int64) (*Campaign, error)
	CampaignsForNGO(ngoID int64) ([]*Campaign, error)
	UpdateStatus(id int64, dto UpdateStatusDTO) error
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

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var dto CreateCampaignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCampaign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.CreateCampaign(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Campaign created successfully",
		"campaign_id": c.ID,
	})
}

func (h *Handler) GetCampaignsForNGO(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(chi.URLParam(r, "ngoID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid NGO ID")
		return
	}

	campaigns, serr := h.Service.CampaignsForNGO(ngoID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if serr := h.Service.UpdateStatus(id, dto); serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": dto.Status})
}
