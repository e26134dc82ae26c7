package auth

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/transport"
	"github.com/frahmantamala/donation-platform/pkg/logger"
)

type ServiceAPI interface {
	RegisterDonor(dto RegisterDonorDTO) (int64, error)
	RegisterNGO(dto RegisterNGODTO) (int64, error)
	LoginDonor(dto LoginDTO) (*DonorLoginResult, error)
	LoginNGO(dto LoginDTO) (*NGOLoginResult, error)
	Refresh(dto RefreshTokenDTO) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
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

func (h *Handler) RegisterDonor(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDonorDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, serr := h.Service.RegisterDonor(dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Donor registered successfully",
		"donor_id": id,
	})
}

func (h *Handler) RegisterNGO(w http.ResponseWriter, r *http.Request) {
	var dto RegisterNGODTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, serr := h.Service.RegisterNGO(dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "NGO registered successfully",
		"ngo_id":  id,
	})
}

func (h *Handler) LoginDonor(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, serr := h.Service.LoginDonor(dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) LoginNGO(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, serr := h.Service.LoginNGO(dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, serr := h.Service.Refresh(dto)
	if serr != nil {
		h.HandleServiceError(w, serr)
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

// AuthMiddleware validates the bearer token and puts the account id and type
// on the request context.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "error", err)
			h.WriteError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := internal.ContextWithUser(r.Context(), claims.UserID, claims.UserType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
