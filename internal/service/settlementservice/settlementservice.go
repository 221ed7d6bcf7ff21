package settlementservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateCoins(ctx context.Context, userID string, balance, bonusCoins float64) error
}

type VoteRepo interface {
	ApplyVote(ctx context.Context, productID, officeID, userID string, delta int, at time.Time) error
}

type OfficeRepo interface {
	GetPeriodStatus(ctx context.Context, officeID string) (domain.PeriodStatus, bool, error)
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOfficeNotFound    = errors.New("office not found")
	ErrVotingClosed      = errors.New("voting period is not active")
	ErrInvalidBatch      = errors.New("invalid vote batch")
)

type Service struct {
	txManager     pg.TXManager
	userRepo      UserRepo
	voteRepo      VoteRepo
	officeRepo    OfficeRepo
	enforcePeriod bool
	now           func() time.Time
}

func New(txManager pg.TXManager, userRepo UserRepo, voteRepo VoteRepo, officeRepo OfficeRepo, enforcePeriod bool) *Service {
	return &Service{
		txManager:     txManager,
		userRepo:      userRepo,
		voteRepo:      voteRepo,
		officeRepo:    officeRepo,
		enforcePeriod: enforcePeriod,
		now:           time.Now,
	}
}

// Settle charges cost coins, bonus coins first, and applies voteChange to the
// product's office tally and the user's ledger entry. Either everything is
// written or nothing is.
func (s *Service) Settle(ctx context.Context, userID, productID, officeID string, voteChange, cost int) (*domain.SettlementResult, error) {
	if voteChange == 0 && cost == 0 {
		return &domain.SettlementResult{}, nil
	}
	if cost < 0 || abs(voteChange) > cost {
		return nil, ErrInvalidBatch
	}

	var result domain.SettlementResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		if s.enforcePeriod {
			status, found, err := s.officeRepo.GetPeriodStatus(ctx, officeID)
			if err != nil {
				return err
			}
			if !found {
				return ErrOfficeNotFound
			}
			if status != domain.PeriodActive {
				return ErrVotingClosed
			}
		}

		balance := decimal.NewFromFloat(user.Balance)
		bonus := decimal.NewFromFloat(user.BonusCoins)
		amount := decimal.NewFromInt(int64(cost))
		if balance.Add(bonus).LessThan(amount) {
			return ErrInsufficientFunds
		}

		bonusSpent := decimal.Min(bonus, amount)
		regularSpent := amount.Sub(bonusSpent)

		newBalance, newBonus := balance.Sub(regularSpent).InexactFloat64(), bonus.Sub(bonusSpent).InexactFloat64()
		if err := s.userRepo.UpdateCoins(ctx, userID, newBalance, newBonus); err != nil {
			return err
		}
		if err := s.voteRepo.ApplyVote(ctx, productID, officeID, userID, voteChange, s.now()); err != nil {
			return err
		}

		result = domain.SettlementResult{
			RegularCoinsSpent: regularSpent.InexactFloat64(),
			BonusCoinsSpent:   bonusSpent.InexactFloat64(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientFunds), errors.Is(err, ErrVotingClosed):
			zap.L().Info("settlement rejected", zap.String("userID", userID), zap.String("productID", productID), zap.Error(err))
		default:
			zap.L().Error("settlement failed", zap.String("userID", userID), zap.String("productID", productID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Debug("settled votes",
		zap.String("userID", userID),
		zap.String("productID", productID),
		zap.String("officeID", officeID),
		zap.Int("voteChange", voteChange),
		zap.Int("cost", cost),
		zap.Float64("regularSpent", result.RegularCoinsSpent),
	)
	return &result, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
