package ngo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	SubmitVerification(ngoID int64, dto SubmitVerificationDTO) (*Verification, error)
	VerificationStatus(ngoID int64) (*VerificationState, error)
	ReviewVerification(verificationID int64, dto ReviewVerificationDTO) error
	SearchNGOs(term string) ([]*DirectoryEntry, error)
	NGODetails(ngoID int64) (*Profile, error)
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

func (h *Handler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(chi.URLParam(r, "ngoID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid NGO ID")
		return
	}

	var dto SubmitVerificationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitVerification: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, serr := h.Service.SubmitVerification(ngoID, dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":         "Verification documents submitted successfully",
		"verification_id": v.ID,
	})
}

func (h *Handler) GetVerificationStatus(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(chi.URLParam(r, "ngoID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid NGO ID")
		return
	}

	state, serr := h.Service.VerificationStatus(ngoID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) ReviewVerification(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid verification ID")
		return
	}

	var dto ReviewVerificationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if serr := h.Service.ReviewVerification(id, dto); serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]bool{"approved": dto.Approve})
}

func (h *Handler) SearchVerifiedNGOs(w http.ResponseWriter, r *http.Request) {
	entries, serr := h.Service.SearchNGOs(r.URL.Query().Get("search"))
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetNGODetails(w http.ResponseWriter, r *http.Request) {
	ngoID, err := strconv.ParseInt(chi.URLParam(r, "ngoID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid NGO ID")
		return
	}

	profile, serr := h.Service.NGODetails(ngoID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}
