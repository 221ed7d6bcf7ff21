package repo

import (
	"github.com/GlebRadaev/snackvote/internal/pg"
	officerepo "github.com/GlebRadaev/snackvote/internal/repo/office-repo"
	productrepo "github.com/GlebRadaev/snackvote/internal/repo/product-repo"
	userrepo "github.com/GlebRadaev/snackvote/internal/repo/user-repo"
	voterepo "github.com/GlebRadaev/snackvote/internal/repo/vote-repo"
)

type Repositories struct {
	UserRepo    *userrepo.Repository
	VoteRepo    *voterepo.Repository
	OfficeRepo  *officerepo.Repository
	ProductRepo *productrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn, txManager),
		VoteRepo:    voterepo.New(conn, txManager),
		OfficeRepo:  officerepo.New(conn),
		ProductRepo: productrepo.New(conn),
	}
}
