package settlementservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)

type mocks struct {
	tx     *pg.MockTXManager
	users  *MockUserRepo
	votes  *MockVoteRepo
	office *MockOfficeRepo
}

func NewMock(t *testing.T, enforcePeriod bool) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tx:     pg.NewMockTXManager(ctrl),
		users:  NewMockUserRepo(ctrl),
		votes:  NewMockVoteRepo(ctrl),
		office: NewMockOfficeRepo(ctrl),
	}
	service := New(m.tx, m.users, m.votes, m.office, enforcePeriod)
	service.now = func() time.Time { return fixedNow }
	return service, m
}

func inTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name          string
		enforce       bool
		voteChange    int
		cost          int
		prepareMock   func(m mocks)
		expected      *domain.SettlementResult
		expectedError error
	}{
		{
			name:       "Regular coins only",
			voteChange: 3,
			cost:       3,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 10}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 7.0, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 3, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{RegularCoinsSpent: 3},
		},
		{
			name:       "Bonus coins are spent first",
			voteChange: 2,
			cost:       2,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 5, BonusCoins: 10}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 5.0, 8.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 2, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{BonusCoinsSpent: 2},
		},
		{
			name:       "Bonus exhausted then regular",
			voteChange: -2,
			cost:       4,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 5, BonusCoins: 1}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 2.0, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", -2, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{RegularCoinsSpent: 3, BonusCoinsSpent: 1},
		},
		{
			name:       "Fractional bonus splits exactly",
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1, BonusCoins: 0.7}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 0.7, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 1, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{RegularCoinsSpent: 0.3, BonusCoinsSpent: 0.7},
		},
		{
			name:       "Up and down cancel out but still cost",
			voteChange: 0,
			cost:       2,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 2}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 0.0, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 0, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{RegularCoinsSpent: 2},
		},
		{
			name:       "Insufficient funds writes nothing",
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1"}, nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:       "Unknown user",
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:       "No-op batch skips the transaction",
			voteChange: 0,
			cost:       0,
			prepareMock: func(m mocks) {
			},
			expected: &domain.SettlementResult{},
		},
		{
			name:       "Vote change larger than cost",
			voteChange: 3,
			cost:       1,
			prepareMock: func(m mocks) {
			},
			expectedError: ErrInvalidBatch,
		},
		{
			name:       "Ledger write failure aborts",
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 0.0, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 1, fixedNow).Return(errors.New("fk violation"))
			},
			expectedError: errors.New("fk violation"),
		},
		{
			name:       "Active period is accepted",
			enforce:    true,
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1}, nil)
				m.office.EXPECT().GetPeriodStatus(gomock.Any(), "nyc").Return(domain.PeriodActive, true, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", 0.0, 0.0).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", 1, fixedNow).Return(nil)
			},
			expected: &domain.SettlementResult{RegularCoinsSpent: 1},
		},
		{
			name:       "Completed period is rejected",
			enforce:    true,
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1}, nil)
				m.office.EXPECT().GetPeriodStatus(gomock.Any(), "nyc").Return(domain.PeriodCompleted, true, nil)
			},
			expectedError: ErrVotingClosed,
		},
		{
			name:       "Unknown office is rejected",
			enforce:    true,
			voteChange: 1,
			cost:       1,
			prepareMock: func(m mocks) {
				inTx(m)
				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").Return(&domain.User{ID: "u1", Balance: 1}, nil)
				m.office.EXPECT().GetPeriodStatus(gomock.Any(), "nyc").Return(domain.PeriodStatus(""), false, nil)
			},
			expectedError: ErrOfficeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.enforce)
			tt.prepareMock(m)

			result, err := service.Settle(context.Background(), "u1", "p1", "nyc", tt.voteChange, tt.cost)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettle_BonusFirstProperty(t *testing.T) {
	for balance := 0; balance <= 6; balance++ {
		for bonus := 0; bonus <= 6; bonus++ {
			for cost := 1; cost <= balance+bonus; cost++ {
				service, m := NewMock(t, false)
				inTx(m)

				wantBonus := bonus
				if cost < bonus {
					wantBonus = cost
				}
				wantRegular := cost - wantBonus

				m.users.EXPECT().GetForUpdate(gomock.Any(), "u1").
					Return(&domain.User{ID: "u1", Balance: float64(balance), BonusCoins: float64(bonus)}, nil)
				m.users.EXPECT().UpdateCoins(gomock.Any(), "u1", float64(balance-wantRegular), float64(bonus-wantBonus)).Return(nil)
				m.votes.EXPECT().ApplyVote(gomock.Any(), "p1", "nyc", "u1", cost, fixedNow).Return(nil)

				result, err := service.Settle(context.Background(), "u1", "p1", "nyc", cost, cost)
				require.NoError(t, err)
				assert.Equal(t, float64(wantRegular), result.RegularCoinsSpent, "balance=%d bonus=%d cost=%d", balance, bonus, cost)
				assert.Equal(t, float64(wantBonus), result.BonusCoinsSpent, "balance=%d bonus=%d cost=%d", balance, bonus, cost)
			}
		}
	}
}
