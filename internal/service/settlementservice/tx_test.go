package settlementservice

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/snackvote/internal/pg"
	officerepo "github.com/GlebRadaev/snackvote/internal/repo/office-repo"
	userrepo "github.com/GlebRadaev/snackvote/internal/repo/user-repo"
	voterepo "github.com/GlebRadaev/snackvote/internal/repo/vote-repo"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lockUser      = regexp.QuoteMeta(`SELECT id, balance, bonus_coins FROM users WHERE id = $1 FOR UPDATE`)
	lockOffice    = regexp.QuoteMeta(`SELECT period_status FROM offices WHERE id = $1 FOR SHARE`)
	updateCoins   = regexp.QuoteMeta(`UPDATE users SET balance = $1, bonus_coins = $2 WHERE id = $3`)
	upsertVotes   = regexp.QuoteMeta(`INSERT INTO product_votes`)
	upsertLedger  = regexp.QuoteMeta(`INSERT INTO user_votes`)
	coinsColumns  = []string{"id", "balance", "bonus_coins"}
	statusColumns = []string{"period_status"}
)

func newPostgresService(t *testing.T) (*Service, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	conn := pg.New(mock)
	txManager := pg.NewTXManager(mock)
	service := New(txManager, userrepo.New(conn, txManager), voterepo.New(conn, txManager), officerepo.New(conn), true)
	service.now = func() time.Time { return fixedNow }
	return service, mock
}

func TestSettle_Postgres_CommitsAllWrites(t *testing.T) {
	service, mock := newPostgresService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockUser).WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(coinsColumns).AddRow("u1", 10.0, 0.0))
	mock.ExpectQuery(lockOffice).WithArgs("nyc").
		WillReturnRows(pgxmock.NewRows(statusColumns).AddRow("active"))
	mock.ExpectExec(updateCoins).WithArgs(7.0, 0.0, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(upsertVotes).WithArgs("p1", "nyc", 3, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(upsertLedger).WithArgs("p1", "nyc", "u1", 3).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	result, err := service.Settle(context.Background(), "u1", "p1", "nyc", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.RegularCoinsSpent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettle_Postgres_FailureAfterBalanceReadRollsBack(t *testing.T) {
	service, mock := newPostgresService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockUser).WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(coinsColumns).AddRow("u1", 10.0, 0.0))
	mock.ExpectQuery(lockOffice).WithArgs("nyc").
		WillReturnRows(pgxmock.NewRows(statusColumns).AddRow("active"))
	mock.ExpectExec(updateCoins).WithArgs(9.0, 0.0, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(upsertVotes).WithArgs("p1", "nyc", 1, fixedNow).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := service.Settle(context.Background(), "u1", "p1", "nyc", 1, 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettle_Postgres_InsufficientFundsWritesNothing(t *testing.T) {
	service, mock := newPostgresService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockUser).WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(coinsColumns).AddRow("u1", 0.0, 0.0))
	mock.ExpectQuery(lockOffice).WithArgs("nyc").
		WillReturnRows(pgxmock.NewRows(statusColumns).AddRow("active"))
	mock.ExpectRollback()

	_, err := service.Settle(context.Background(), "u1", "p1", "nyc", 1, 1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettle_Postgres_UnknownUser(t *testing.T) {
	service, mock := newPostgresService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockUser).WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows(coinsColumns))
	mock.ExpectRollback()

	_, err := service.Settle(context.Background(), "ghost", "p1", "nyc", 1, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
