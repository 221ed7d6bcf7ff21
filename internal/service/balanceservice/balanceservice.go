package balanceservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type UserRepo interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	AddCoins(ctx context.Context, userID string, balance, bonusCoins float64) (*domain.User, error)
}

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidAmount = errors.New("invalid amount")
)

func (s *Service) GetBalance(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Grant credits coins to a user. Both amounts must be non-negative and at least
// one of them positive.
func (s *Service) Grant(ctx context.Context, userID string, balance, bonusCoins float64) (*domain.User, error) {
	if balance < 0 || bonusCoins < 0 || balance+bonusCoins == 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.AddCoins(ctx, userID, balance, bonusCoins)
	if err != nil {
		zap.L().Error("failed to grant coins", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	zap.L().Info("coins granted",
		zap.String("userID", userID),
		zap.Float64("balance", balance),
		zap.Float64("bonusCoins", bonusCoins),
	)
	return user, nil
}
