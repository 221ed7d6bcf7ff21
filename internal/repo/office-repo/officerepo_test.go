package officerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	start := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	end := start.Add(5 * 24 * time.Hour)
	czar := "czar-1"
	query := regexp.QuoteMeta(`SELECT id, name, timezone, czar, tipping_enabled, period_start, period_end, period_status, last_reset_at FROM offices WHERE id = $1`)
	columns := []string{"id", "name", "timezone", "czar", "tipping_enabled", "period_start", "period_end", "period_status", "last_reset_at"}

	mock.ExpectQuery(query).
		WithArgs("nyc").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("nyc", "New York", "America/New_York", &czar, true, start, end, "active", &start))

	office, err := repo.Get(context.Background(), "nyc")
	require.NoError(t, err)
	assert.Equal(t, &domain.Office{
		ID:             "nyc",
		Name:           "New York",
		Timezone:       "America/New_York",
		Czar:           &czar,
		TippingEnabled: true,
		CurrentVotingPeriod: domain.VotingPeriod{
			StartDate: start,
			EndDate:   end,
			Status:    domain.PeriodActive,
		},
		LastResetAt: &start,
	}, office)
	assert.True(t, office.VotingOpen())

	mock.ExpectQuery(query).WithArgs("paris").WillReturnError(pgx.ErrNoRows)
	office, err = repo.Get(context.Background(), "paris")
	assert.NoError(t, err)
	assert.Nil(t, office)

	mock.ExpectQuery(query).WithArgs("nyc").WillReturnError(errors.New("database error"))
	_, err = repo.Get(context.Background(), "nyc")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetPeriodStatus(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SELECT period_status FROM offices WHERE id = $1 FOR SHARE`)

	mock.ExpectQuery(query).WithArgs("nyc").
		WillReturnRows(pgxmock.NewRows([]string{"period_status"}).AddRow("completed"))
	status, found, err := repo.GetPeriodStatus(context.Background(), "nyc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.PeriodCompleted, status)

	mock.ExpectQuery(query).WithArgs("paris").WillReturnError(pgx.ErrNoRows)
	_, found, err = repo.GetPeriodStatus(context.Background(), "paris")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Updates(t *testing.T) {
	czar := "u7"
	start := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		call      func(repo *Repository) (bool, error)
		expected  bool
		expectErr bool
	}{
		{
			name: "Set czar",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE offices SET czar = $1 WHERE id = $2`)).
					WithArgs(&czar, "nyc").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			call: func(repo *Repository) (bool, error) {
				return repo.SetCzar(context.Background(), "nyc", &czar)
			},
			expected: true,
		},
		{
			name: "Set tipping on unknown office",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE offices SET tipping_enabled = $1 WHERE id = $2`)).
					WithArgs(false, "paris").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			call: func(repo *Repository) (bool, error) {
				return repo.SetTipping(context.Background(), "paris", false)
			},
		},
		{
			name: "Close period",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE offices SET period_status = $1 WHERE id = $2`)).
					WithArgs("completed", "nyc").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			call: func(repo *Repository) (bool, error) {
				return repo.SetPeriodStatus(context.Background(), "nyc", domain.PeriodCompleted)
			},
			expected: true,
		},
		{
			name: "Start period",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE offices SET period_start = $1, period_end = $2, period_status = $3, last_reset_at = $1 WHERE id = $4`)).
					WithArgs(start, end, "active", "nyc").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			call: func(repo *Repository) (bool, error) {
				return repo.StartPeriod(context.Background(), "nyc", domain.VotingPeriod{
					StartDate: start,
					EndDate:   end,
					Status:    domain.PeriodActive,
				})
			},
			expected: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE offices SET tipping_enabled = $1 WHERE id = $2`)).
					WithArgs(true, "nyc").
					WillReturnError(errors.New("database error"))
			},
			call: func(repo *Repository) (bool, error) {
				return repo.SetTipping(context.Background(), "nyc", true)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)

			ok, err := tt.call(repo)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
