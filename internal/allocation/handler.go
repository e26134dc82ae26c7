package allocation

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateAllocation(dto CreateAllocationDTO) (*Allocation, error)
	AllocationsForCampaign(campaignID int64) ([]*Allocation, error)
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

func (h *Handler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	var dto CreateAllocationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateAllocation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateAllocation(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "Fund allocation created successfully",
		"allocation_id": a.ID,
	})
}

func (h *Handler) GetCampaignAllocations(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	allocations, serr := h.Service.AllocationsForCampaign(campaignID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, allocations)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid allocation ID")
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
