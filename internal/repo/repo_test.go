package repo

import (
	"testing"

	"github.com/GlebRadaev/snackvote/internal/pg"
	officerepo "github.com/GlebRadaev/snackvote/internal/repo/office-repo"
	productrepo "github.com/GlebRadaev/snackvote/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/snackvote/internal/repo/user-repo"
	voterepo "github.com/GlebRadaev/snackvote/internal/repo/vote-repo"
	"github.com/GlebRadaev/snackvote/internal/service/balanceservice"
	"github.com/GlebRadaev/snackvote/internal/service/officeservice"
	"github.com/GlebRadaev/snackvote/internal/service/productservice"
	"github.com/GlebRadaev/snackvote/internal/service/settlementservice"
	"github.com/GlebRadaev/snackvote/internal/session"
	"github.com/GlebRadaev/snackvote/internal/tipping"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var (
	_ settlementservice.UserRepo   = (*userrepo.Repository)(nil)
	_ settlementservice.VoteRepo   = (*voterepo.Repository)(nil)
	_ settlementservice.OfficeRepo = (*officerepo.Repository)(nil)
	_ balanceservice.UserRepo      = (*userrepo.Repository)(nil)
	_ officeservice.OfficeRepo     = (*officerepo.Repository)(nil)
	_ officeservice.VoteRepo       = (*voterepo.Repository)(nil)
	_ officeservice.UserRepo       = (*userrepo.Repository)(nil)
	_ productservice.Repo          = (*productrepo.Repository)(nil)
	_ session.VoteReader           = (*voterepo.Repository)(nil)
	_ tipping.OfficeReader         = (*officerepo.Repository)(nil)
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(pg.New(mockDB), pg.NewMockTXManager(ctrl)), mockDB
}

func TestNew(t *testing.T) {
	repos, mock := NewMock(t)

	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.VoteRepo)
	assert.NotNil(t, repos.OfficeRepo)
	assert.NotNil(t, repos.ProductRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
