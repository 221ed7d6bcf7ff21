package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (repo *Repository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT id, email, display_name, balance, bonus_coins, is_admin, created_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Email, &user.DisplayName, &user.Balance, &user.BonusCoins, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetForUpdate reads the coin fields and locks the row until the surrounding
// transaction ends. Must be called inside TXManager.Begin.
func (repo *Repository) GetForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT id, balance, bonus_coins
		FROM users
		WHERE id = $1
		FOR UPDATE
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Balance, &user.BonusCoins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock user", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) UpdateCoins(ctx context.Context, userID string, balance, bonusCoins float64) error {
	query := `
		UPDATE users
		SET balance = $1, bonus_coins = $2
		WHERE id = $3
	`
	_, err := repo.db.Exec(ctx, query, balance, bonusCoins, userID)
	if err != nil {
		zap.L().Error("can't update user coins", zap.String("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

// AddCoins credits both currencies and returns the updated user, nil when the user
// does not exist.
func (repo *Repository) AddCoins(ctx context.Context, userID string, balance, bonusCoins float64) (*domain.User, error) {
	query := `
		UPDATE users
		SET balance = balance + $1, bonus_coins = bonus_coins + $2
		WHERE id = $3
		RETURNING id, email, display_name, balance, bonus_coins, is_admin, created_at
	`
	var user domain.User
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		return repo.db.QueryRow(ctx, query, balance, bonusCoins, userID).
			Scan(&user.ID, &user.Email, &user.DisplayName, &user.Balance, &user.BonusCoins, &user.IsAdmin, &user.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't grant coins", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// SetAdmin reports false when no user matched.
func (repo *Repository) SetAdmin(ctx context.Context, userID string, isAdmin bool) (bool, error) {
	tag, err := repo.db.Exec(ctx, `UPDATE users SET is_admin = $1 WHERE id = $2`, isAdmin, userID)
	if err != nil {
		zap.L().Error("can't update admin flag", zap.String("userID", userID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
