package votes

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/dto"
	"github.com/GlebRadaev/snackvote/internal/service/balanceservice"
	"github.com/GlebRadaev/snackvote/internal/service/officeservice"
	"github.com/GlebRadaev/snackvote/internal/service/settlementservice"
	"github.com/GlebRadaev/snackvote/internal/session"
	"github.com/GlebRadaev/snackvote/pkg/auth"
	"github.com/GlebRadaev/snackvote/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=votes.go -destination=mock_votes.go -package=votes

type Service interface {
	Vote(ctx context.Context, userID, officeID, productID string, direction domain.Direction) (*session.Snapshot, error)
	Snapshot(ctx context.Context, userID, officeID string) (*session.Snapshot, error)
	End(ctx context.Context, userID, officeID string) error
}

type VoteHandler struct {
	sessions Service
}

func New(sessions Service) *VoteHandler {
	return &VoteHandler{
		sessions: sessions,
	}
}

// Vote godoc
//
//	@Summary		Vote for a product
//	@Description	Registers one up or down click. The change is shown at once and settled after a short quiet period; one coin is spent per click, bonus coins first.
//	@Tags			Votes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			office		path		string					true	"Office id"
//	@Param			productID	path		string					true	"Product id"
//	@Param			direction	path		string					true	"up or down"	Enums(up, down)
//	@Success		202			{object}	dto.SessionResponseDTO	"Click accepted"
//	@Failure		400			{object}	utils.Response			"Invalid direction"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		404			{object}	utils.Response			"Office or user not found"
//	@Failure		409			{object}	utils.Response			"Voting period is not active"
//	@Failure		503			{object}	utils.Response			"Server is shutting down"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/offices/{office}/votes/{productID}/{direction} [post]
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	officeID := chi.URLParam(r, "office")
	productID := chi.URLParam(r, "productID")
	direction := domain.Direction(chi.URLParam(r, "direction"))

	if !direction.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, session.ErrInvalidDirection.Error())
		return
	}

	snap, err := h.sessions.Vote(r.Context(), userID, officeID, productID, direction)
	if err != nil {
		respondWithSessionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toSessionDTO(snap))
}

// GetSession godoc
//
//	@Summary		Get voting session
//	@Description	Returns the optimistic vote counts and balance of the caller's session in the office and drains queued failure notices.
//	@Tags			Votes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			office	path		string					true	"Office id"
//	@Success		200		{object}	dto.SessionResponseDTO	"Session state"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Office or user not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/offices/{office}/session [get]
func (h *VoteHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	officeID := chi.URLParam(r, "office")

	snap, err := h.sessions.Snapshot(r.Context(), userID, officeID)
	if err != nil {
		respondWithSessionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSessionDTO(snap))
}

// EndSession godoc
//
//	@Summary		End voting session
//	@Description	Settles every pending click of the caller in the office and closes the session.
//	@Tags			Votes
//	@Security		BearerAuth
//	@Param			office	path	string	true	"Office id"
//	@Success		204		"Session closed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/offices/{office}/session [delete]
func (h *VoteHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)
	officeID := chi.URLParam(r, "office")

	if err := h.sessions.End(r.Context(), userID, officeID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondWithSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidDirection):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, officeservice.ErrOfficeNotFound), errors.Is(err, balanceservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, settlementservice.ErrVotingClosed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, session.ErrSessionClosed):
		utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSessionDTO(snap *session.Snapshot) dto.SessionResponseDTO {
	notices := make([]dto.NoticeDTO, len(snap.Notices))
	for i, n := range snap.Notices {
		notices[i] = dto.NoticeDTO{
			Kind:      string(n.Kind),
			ProductID: n.ProductID,
			Message:   n.Message,
			At:        n.At,
		}
	}
	return dto.SessionResponseDTO{
		OfficeID:   snap.OfficeID,
		Votes:      snap.Votes,
		Balance:    snap.Balance,
		BonusCoins: snap.BonusCoins,
		Pending:    snap.Pending,
		Notices:    notices,
	}
}
