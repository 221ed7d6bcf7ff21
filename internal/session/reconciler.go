package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const FailureMessage = "failed to save votes, please refresh"

type NoticeKind string

const (
	NoticeInsufficientFunds NoticeKind = "insufficient_funds"
	NoticeSettlementFailed  NoticeKind = "settlement_failed"
)

type Notice struct {
	Kind      NoticeKind
	ProductID string
	Message   string
	At        time.Time
}

// LocalView is the optimistic state a failed settlement has to be undone on.
type LocalView interface {
	RevertVotes(productID string, voteChange int)
	ReplaceBalance(balance, bonusCoins float64)
	Notify(notice Notice)
}

// Reconciler undoes the optimistic effect of a batch that failed to settle.
// The vote delta is subtracted exactly; the balance view is re-read instead,
// since other batches may have spent from it in the meantime.
type Reconciler struct {
	balances BalanceReader
	now      func() time.Time
}

func NewReconciler(balances BalanceReader) *Reconciler {
	return &Reconciler{
		balances: balances,
		now:      time.Now,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context, view LocalView, userID, productID string, voteChange int, kind NoticeKind) {
	view.RevertVotes(productID, voteChange)

	user, err := r.balances.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to refresh balance after settlement failure", zap.String("userID", userID), zap.Error(err))
	} else {
		view.ReplaceBalance(user.Balance, user.BonusCoins)
	}

	view.Notify(Notice{
		Kind:      kind,
		ProductID: productID,
		Message:   FailureMessage,
		At:        r.now(),
	})
}
