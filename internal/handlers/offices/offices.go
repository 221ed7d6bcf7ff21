package offices

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/dto"
	"github.com/GlebRadaev/snackvote/internal/handlers/products"
	"github.com/GlebRadaev/snackvote/internal/service/officeservice"
	"github.com/GlebRadaev/snackvote/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=offices.go -destination=mock_offices.go -package=offices

type Service interface {
	GetOffice(ctx context.Context, officeID string) (*domain.Office, error)
	SetCzar(ctx context.Context, officeID, userID string) error
	SetTipping(ctx context.Context, officeID string, enabled bool) error
	StartVotingPeriod(ctx context.Context, officeID string, endDate time.Time) (*domain.VotingPeriod, error)
	CloseVotingPeriod(ctx context.Context, officeID string) error
	Leaderboard(ctx context.Context, officeID string, limit int) ([]domain.LeaderboardEntry, error)
	ProductVotes(ctx context.Context, productID, officeID string) (*domain.ProductVotes, error)
}

type OfficeHandler struct {
	officeService Service
}

func New(officeService Service) *OfficeHandler {
	return &OfficeHandler{
		officeService: officeService,
	}
}

// GetOffice godoc
//
//	@Summary		Get office
//	@Description	Office settings together with its current voting period.
//	@Tags			Offices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			office	path		string					true	"Office id"
//	@Success		200		{object}	dto.OfficeResponseDTO	"Office"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Office not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/offices/{office} [get]
func (h *OfficeHandler) GetOffice(w http.ResponseWriter, r *http.Request) {
	office, err := h.officeService.GetOffice(r.Context(), chi.URLParam(r, "office"))
	if err != nil {
		respondWithOfficeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OfficeResponseDTO{
		ID:                  office.ID,
		Name:                office.Name,
		Timezone:            office.Timezone,
		Czar:                office.Czar,
		TippingEnabled:      office.TippingEnabled,
		CurrentVotingPeriod: toPeriodDTO(office.CurrentVotingPeriod),
		LastResetAt:         office.LastResetAt,
	})
}

// Leaderboard godoc
//
//	@Summary		Office leaderboard
//	@Description	Active products ordered by votes, ties broken by the number of distinct voters and then by the most recent vote.
//	@Tags			Offices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			office	path		string	true	"Office id"
//	@Param			limit	query		int		false	"Number of entries, 10 by default"
//	@Success		200		{array}		dto.LeaderboardEntryDTO	"Leaderboard"
//	@Failure		400		{object}	utils.Response			"Invalid limit"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Office not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/offices/{office}/leaderboard [get]
func (h *OfficeHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, officeservice.ErrInvalidLimit.Error())
			return
		}
		limit = parsed
	}

	entries, err := h.officeService.Leaderboard(r.Context(), chi.URLParam(r, "office"), limit)
	if err != nil {
		respondWithOfficeError(w, err)
		return
	}

	response := make([]dto.LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.LeaderboardEntryDTO{
			Rank:        i + 1,
			Product:     products.ToProductDTO(e.Product),
			Votes:       e.Votes,
			Voters:      e.Voters,
			LastVotedAt: e.LastVotedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ProductVotes godoc
//
//	@Summary		Product votes
//	@Description	Vote count of a product in the office and the per user ledger it sums up.
//	@Tags			Offices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			office		path		string	true	"Office id"
//	@Param			productID	path		string	true	"Product id"
//	@Success		200			{object}	dto.ProductVotesResponseDTO	"Votes"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		404			{object}	utils.Response				"Office not found"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/offices/{office}/products/{productID}/votes [get]
func (h *OfficeHandler) ProductVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.officeService.ProductVotes(r.Context(), chi.URLParam(r, "productID"), chi.URLParam(r, "office"))
	if err != nil {
		respondWithOfficeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProductVotesResponseDTO{
		ProductID:   votes.ProductID,
		OfficeID:    votes.OfficeID,
		Votes:       votes.Votes,
		UserVotes:   votes.UserVotes,
		LastVotedAt: votes.LastVotedAt,
	})
}

// SetCzar godoc
//
//	@Summary		Assign snack czar
//	@Description	Makes the user the office's snack czar and an admin. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			office	path	string					true	"Office id"
//	@Param			request	body	dto.SetCzarRequestDTO	true	"New czar"
//	@Success		204		"Czar assigned"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Office or user not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/offices/{office}/czar [put]
func (h *OfficeHandler) SetCzar(w http.ResponseWriter, r *http.Request) {
	var req dto.SetCzarRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.officeService.SetCzar(r.Context(), chi.URLParam(r, "office"), req.UserID); err != nil {
		respondWithOfficeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetTipping godoc
//
//	@Summary		Toggle czar tipping
//	@Description	When enabled, regular coins spent on votes are tipped to the office's czar. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			office	path	string						true	"Office id"
//	@Param			request	body	dto.SetTippingRequestDTO	true	"Tipping flag"
//	@Success		204		"Tipping updated"
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Office not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/offices/{office}/tipping [put]
func (h *OfficeHandler) SetTipping(w http.ResponseWriter, r *http.Request) {
	var req dto.SetTippingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.officeService.SetTipping(r.Context(), chi.URLParam(r, "office"), req.Enabled); err != nil {
		respondWithOfficeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// StartVotingPeriod godoc
//
//	@Summary		Start voting period
//	@Description	Resets the office's votes and opens a new voting period ending at end_date. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			office	path		string						true	"Office id"
//	@Param			request	body		dto.StartPeriodRequestDTO	true	"Period end"
//	@Success		201		{object}	dto.VotingPeriodDTO			"Period started"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		403		{object}	utils.Response				"Admin only"
//	@Failure		404		{object}	utils.Response				"Office not found"
//	@Failure		422		{object}	utils.Response				"End date is not in the future"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/offices/{office}/period [post]
func (h *OfficeHandler) StartVotingPeriod(w http.ResponseWriter, r *http.Request) {
	var req dto.StartPeriodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	period, err := h.officeService.StartVotingPeriod(r.Context(), chi.URLParam(r, "office"), req.EndDate)
	if err != nil {
		respondWithOfficeError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPeriodDTO(*period))
}

// CloseVotingPeriod godoc
//
//	@Summary		Close voting period
//	@Description	Marks the current period completed; further votes are rejected. Admin only.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			office	path	string	true	"Office id"
//	@Success		204		"Period closed"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Office not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/offices/{office}/period/close [post]
func (h *OfficeHandler) CloseVotingPeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.officeService.CloseVotingPeriod(r.Context(), chi.URLParam(r, "office")); err != nil {
		respondWithOfficeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondWithOfficeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, officeservice.ErrOfficeNotFound), errors.Is(err, officeservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, officeservice.ErrInvalidLimit):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, officeservice.ErrInvalidEndDate):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPeriodDTO(p domain.VotingPeriod) dto.VotingPeriodDTO {
	return dto.VotingPeriodDTO{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    string(p.Status),
	}
}
