package voterepo

import (
	"context"
	"errors"
	"time"

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

// ApplyVote moves the office aggregate and the user's ledger entry by the same
// delta in one transaction, which keeps votes equal to the sum of the ledger.
func (r *Repository) ApplyVote(ctx context.Context, productID, officeID, userID string, delta int, at time.Time) error {
	aggregate := `
		INSERT INTO product_votes (product_id, office_id, votes, last_voted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, office_id)
		DO UPDATE SET votes = product_votes.votes + EXCLUDED.votes, last_voted_at = EXCLUDED.last_voted_at
	`
	ledger := `
		INSERT INTO user_votes (product_id, office_id, user_id, votes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, office_id, user_id)
		DO UPDATE SET votes = user_votes.votes + EXCLUDED.votes
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, aggregate, productID, officeID, delta, at); err != nil {
			zap.L().Error("failed to update product votes", zap.String("productID", productID), zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, ledger, productID, officeID, userID, delta); err != nil {
			zap.L().Error("failed to update user votes", zap.String("productID", productID), zap.Error(err))
			return err
		}
		return nil
	})
}

// GetProductVotes never returns nil: a product nobody voted for has zero votes
// and an empty ledger.
func (r *Repository) GetProductVotes(ctx context.Context, productID, officeID string) (*domain.ProductVotes, error) {
	votes := &domain.ProductVotes{
		ProductID: productID,
		OfficeID:  officeID,
		UserVotes: map[string]int{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT votes, last_voted_at
		FROM product_votes
		WHERE product_id = $1 AND office_id = $2
	`, productID, officeID).Scan(&votes.Votes, &votes.LastVotedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to get product votes", zap.String("productID", productID), zap.Error(err))
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, votes
		FROM user_votes
		WHERE product_id = $1 AND office_id = $2
	`, productID, officeID)
	if err != nil {
		zap.L().Error("failed to get user votes", zap.String("productID", productID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID string
		var n int
		if err := rows.Scan(&userID, &n); err != nil {
			zap.L().Error("failed to scan user votes row", zap.Error(err))
			return nil, err
		}
		votes.UserVotes[userID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return votes, nil
}

// Leaderboard ranks active products of an office. Ties on votes are broken by the
// number of users with a non-zero ledger entry, then by the most recent vote.
func (r *Repository) Leaderboard(ctx context.Context, officeID string, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT p.id, p.name, p.category, p.price, p.image_url, p.tags,
			COALESCE(pv.votes, 0),
			(SELECT COUNT(*) FROM user_votes uv WHERE uv.product_id = p.id AND uv.office_id = $1 AND uv.votes <> 0),
			pv.last_voted_at
		FROM products p
		LEFT JOIN product_votes pv ON pv.product_id = p.id AND pv.office_id = $1
		WHERE p.is_active
		ORDER BY 7 DESC, 8 DESC, pv.last_voted_at DESC NULLS LAST, p.name ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, officeID, limit)
	if err != nil {
		zap.L().Error("failed to get leaderboard", zap.String("officeID", officeID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		err := rows.Scan(&e.Product.ID, &e.Product.Name, &e.Product.Category, &e.Product.Price,
			&e.Product.ImageURL, &e.Product.Tags, &e.Votes, &e.Voters, &e.LastVotedAt)
		if err != nil {
			zap.L().Error("failed to scan leaderboard row", zap.Error(err))
			return nil, err
		}
		e.Product.IsActive = true
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ResetOffice starts a fresh period: aggregates go to zero with a refreshed
// last_voted_at and the ledger is cleared.
func (r *Repository) ResetOffice(ctx context.Context, officeID string, at time.Time) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `UPDATE product_votes SET votes = 0, last_voted_at = $2 WHERE office_id = $1`, officeID, at); err != nil {
			zap.L().Error("failed to reset product votes", zap.String("officeID", officeID), zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM user_votes WHERE office_id = $1`, officeID); err != nil {
			zap.L().Error("failed to clear user votes", zap.String("officeID", officeID), zap.Error(err))
			return err
		}
		return nil
	})
}
