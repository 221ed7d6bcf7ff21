package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type recordingView struct {
	reverted map[string]int
	balance  *[2]float64
	notices  []Notice
}

func (v *recordingView) RevertVotes(productID string, voteChange int) {
	if v.reverted == nil {
		v.reverted = map[string]int{}
	}
	v.reverted[productID] += voteChange
}

func (v *recordingView) ReplaceBalance(balance, bonusCoins float64) {
	v.balance = &[2]float64{balance, bonusCoins}
}

func (v *recordingView) Notify(notice Notice) {
	v.notices = append(v.notices, notice)
}

func TestReconciler_Reconcile(t *testing.T) {
	at := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name            string
		kind            NoticeKind
		prepareMock     func(balances *MockBalanceReader)
		expectedBalance *[2]float64
	}{
		{
			name: "Balance refreshed",
			kind: NoticeInsufficientFunds,
			prepareMock: func(balances *MockBalanceReader) {
				balances.EXPECT().GetBalance(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1.5, BonusCoins: 2}, nil)
			},
			expectedBalance: &[2]float64{1.5, 2},
		},
		{
			name: "Refresh fails, notice still queued",
			kind: NoticeSettlementFailed,
			prepareMock: func(balances *MockBalanceReader) {
				balances.EXPECT().GetBalance(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			balances := NewMockBalanceReader(ctrl)
			tt.prepareMock(balances)

			reconciler := NewReconciler(balances)
			reconciler.now = func() time.Time { return at }

			view := &recordingView{}
			reconciler.Reconcile(context.Background(), view, "u1", "p1", 3, tt.kind)

			assert.Equal(t, map[string]int{"p1": 3}, view.reverted)
			assert.Equal(t, tt.expectedBalance, view.balance)
			require.Len(t, view.notices, 1)
			assert.Equal(t, Notice{Kind: tt.kind, ProductID: "p1", Message: FailureMessage, At: at}, view.notices[0])
		})
	}
}
