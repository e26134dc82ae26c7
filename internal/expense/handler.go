package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	RecordExpense(dto CreateExpenseDTO) (*Expense, error)
	ExpensesForCampaign(campaignID int64) ([]*Expense, error)
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

func (h *Handler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("RecordExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.Service.RecordExpense(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Expense recorded successfully",
		"expense_id": e.ID,
	})
}

func (h *Handler) GetCampaignExpenses(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid campaign ID")
		return
	}

	expenses, serr := h.Service.ExpensesForCampaign(campaignID)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, expenses)
}
