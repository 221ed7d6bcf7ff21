package officerepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, officeID string) (*domain.Office, error) {
	query := `
		SELECT id, name, timezone, czar, tipping_enabled, period_start, period_end, period_status, last_reset_at
		FROM offices
		WHERE id = $1
	`
	var office domain.Office
	var status string
	err := r.db.QueryRow(ctx, query, officeID).Scan(
		&office.ID, &office.Name, &office.Timezone, &office.Czar, &office.TippingEnabled,
		&office.CurrentVotingPeriod.StartDate, &office.CurrentVotingPeriod.EndDate, &status, &office.LastResetAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get office", zap.String("officeID", officeID), zap.Error(err))
		return nil, err
	}
	office.CurrentVotingPeriod.Status = domain.PeriodStatus(status)
	return &office, nil
}

// GetPeriodStatus share-locks the office row so the period cannot be closed while
// a settlement that checked it is still open.
func (r *Repository) GetPeriodStatus(ctx context.Context, officeID string) (domain.PeriodStatus, bool, error) {
	var status string
	err := r.db.QueryRow(ctx, `SELECT period_status FROM offices WHERE id = $1 FOR SHARE`, officeID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		zap.L().Error("can't get office period", zap.String("officeID", officeID), zap.Error(err))
		return "", false, err
	}
	return domain.PeriodStatus(status), true, nil
}

func (r *Repository) SetCzar(ctx context.Context, officeID string, czar *string) (bool, error) {
	return r.update(ctx, "czar", `UPDATE offices SET czar = $1 WHERE id = $2`, czar, officeID)
}

func (r *Repository) SetTipping(ctx context.Context, officeID string, enabled bool) (bool, error) {
	return r.update(ctx, "tipping", `UPDATE offices SET tipping_enabled = $1 WHERE id = $2`, enabled, officeID)
}

func (r *Repository) SetPeriodStatus(ctx context.Context, officeID string, status domain.PeriodStatus) (bool, error) {
	return r.update(ctx, "period status", `UPDATE offices SET period_status = $1 WHERE id = $2`, string(status), officeID)
}

// StartPeriod installs a new current period and records its start as the reset time.
func (r *Repository) StartPeriod(ctx context.Context, officeID string, period domain.VotingPeriod) (bool, error) {
	query := `
		UPDATE offices
		SET period_start = $1, period_end = $2, period_status = $3, last_reset_at = $1
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, period.StartDate, period.EndDate, string(period.Status), officeID)
	if err != nil {
		zap.L().Error("can't start voting period", zap.String("officeID", officeID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) update(ctx context.Context, what, query string, value any, officeID string) (bool, error) {
	tag, err := r.db.Exec(ctx, query, value, officeID)
	if err != nil {
		zap.L().Error("can't update office "+what, zap.String("officeID", officeID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
