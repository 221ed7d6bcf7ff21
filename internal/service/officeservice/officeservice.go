package officeservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=officeservice.go -destination=mock_officeservice.go -package=officeservice

type OfficeRepo interface {
	Get(ctx context.Context, officeID string) (*domain.Office, error)
	SetCzar(ctx context.Context, officeID string, czar *string) (bool, error)
	SetTipping(ctx context.Context, officeID string, enabled bool) (bool, error)
	SetPeriodStatus(ctx context.Context, officeID string, status domain.PeriodStatus) (bool, error)
	StartPeriod(ctx context.Context, officeID string, period domain.VotingPeriod) (bool, error)
}

type VoteRepo interface {
	GetProductVotes(ctx context.Context, productID, officeID string) (*domain.ProductVotes, error)
	Leaderboard(ctx context.Context, officeID string, limit int) ([]domain.LeaderboardEntry, error)
	ResetOffice(ctx context.Context, officeID string, at time.Time) error
}

type UserRepo interface {
	SetAdmin(ctx context.Context, userID string, isAdmin bool) (bool, error)
}

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidEndDate = errors.New("voting period must end in the future")
	ErrInvalidLimit   = errors.New("invalid leaderboard limit")
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type Service struct {
	txManager  pg.TXManager
	officeRepo OfficeRepo
	voteRepo   VoteRepo
	userRepo   UserRepo
	now        func() time.Time
}

func New(txManager pg.TXManager, officeRepo OfficeRepo, voteRepo VoteRepo, userRepo UserRepo) *Service {
	return &Service{
		txManager:  txManager,
		officeRepo: officeRepo,
		voteRepo:   voteRepo,
		userRepo:   userRepo,
		now:        time.Now,
	}
}

func (s *Service) GetOffice(ctx context.Context, officeID string) (*domain.Office, error) {
	office, err := s.officeRepo.Get(ctx, officeID)
	if err != nil {
		zap.L().Error("failed to get office", zap.String("officeID", officeID), zap.Error(err))
		return nil, err
	}
	if office == nil {
		return nil, ErrOfficeNotFound
	}
	return office, nil
}

// SetCzar makes userID the office's snack czar and an admin in one transaction.
func (s *Service) SetCzar(ctx context.Context, officeID, userID string) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		found, err := s.officeRepo.SetCzar(ctx, officeID, &userID)
		if err != nil {
			return err
		}
		if !found {
			return ErrOfficeNotFound
		}
		found, err = s.userRepo.SetAdmin(ctx, userID, true)
		if err != nil {
			return err
		}
		if !found {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	zap.L().Info("snack czar assigned", zap.String("officeID", officeID), zap.String("userID", userID))
	return nil
}

func (s *Service) SetTipping(ctx context.Context, officeID string, enabled bool) error {
	found, err := s.officeRepo.SetTipping(ctx, officeID, enabled)
	if err != nil {
		return err
	}
	if !found {
		return ErrOfficeNotFound
	}
	return nil
}

// StartVotingPeriod clears the office's votes and opens a period ending at endDate.
func (s *Service) StartVotingPeriod(ctx context.Context, officeID string, endDate time.Time) (*domain.VotingPeriod, error) {
	now := s.now()
	if !endDate.After(now) {
		return nil, ErrInvalidEndDate
	}

	period := domain.VotingPeriod{
		StartDate: now,
		EndDate:   endDate,
		Status:    domain.PeriodActive,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		found, err := s.officeRepo.StartPeriod(ctx, officeID, period)
		if err != nil {
			return err
		}
		if !found {
			return ErrOfficeNotFound
		}
		return s.voteRepo.ResetOffice(ctx, officeID, now)
	})
	if err != nil {
		if !errors.Is(err, ErrOfficeNotFound) {
			zap.L().Error("failed to start voting period", zap.String("officeID", officeID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("voting period started", zap.String("officeID", officeID), zap.Time("endDate", endDate))
	return &period, nil
}

func (s *Service) CloseVotingPeriod(ctx context.Context, officeID string) error {
	found, err := s.officeRepo.SetPeriodStatus(ctx, officeID, domain.PeriodCompleted)
	if err != nil {
		return err
	}
	if !found {
		return ErrOfficeNotFound
	}
	zap.L().Info("voting period closed", zap.String("officeID", officeID))
	return nil
}

// Leaderboard falls back to DefaultLeaderboardLimit when limit is zero.
func (s *Service) Leaderboard(ctx context.Context, officeID string, limit int) ([]domain.LeaderboardEntry, error) {
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 0 || limit > MaxLeaderboardLimit {
		return nil, ErrInvalidLimit
	}
	if _, err := s.GetOffice(ctx, officeID); err != nil {
		return nil, err
	}
	return s.voteRepo.Leaderboard(ctx, officeID, limit)
}

func (s *Service) ProductVotes(ctx context.Context, productID, officeID string) (*domain.ProductVotes, error) {
	if _, err := s.GetOffice(ctx, officeID); err != nil {
		return nil, err
	}
	return s.voteRepo.GetProductVotes(ctx, productID, officeID)
}
