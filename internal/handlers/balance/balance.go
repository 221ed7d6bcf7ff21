package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/dto"
	balanceservice "github.com/GlebRadaev/snackvote/internal/service/balanceservice"
	"github.com/GlebRadaev/snackvote/pkg/auth"
	"github.com/GlebRadaev/snackvote/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=balance.go -destination=mock_balance.go -package=balance

type Service interface {
	GetBalance(ctx context.Context, userID string) (*domain.User, error)
	Grant(ctx context.Context, userID string, balance, bonusCoins float64) (*domain.User, error)
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the authoritative regular and bonus coin balance of the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	user, err := h.balanceService.GetBalance(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(user))
}

// Grant godoc
//
//	@Summary		Grant coins
//	@Description	Credit regular and bonus coins to a user. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string				true	"User id"
//	@Param			request	body		dto.GrantRequestDTO	true	"Amounts to credit"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Updated balance"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin only"
//	@Failure		404		{object}	utils.Response			"User not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{userID}/grant [post]
func (h *BalanceHandler) Grant(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req dto.GrantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.balanceService.Grant(r.Context(), userID, req.Balance, req.BonusCoins)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, balanceservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalanceDTO(user))
}

func toBalanceDTO(user *domain.User) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		UserID:     user.ID,
		Balance:    user.Balance,
		BonusCoins: user.BonusCoins,
	}
}
