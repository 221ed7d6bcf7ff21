package service

import (
	"context"

	"github.com/GlebRadaev/snackvote/internal/config"
	"github.com/GlebRadaev/snackvote/internal/handlers/balance"
	"github.com/GlebRadaev/snackvote/internal/handlers/offices"
	"github.com/GlebRadaev/snackvote/internal/handlers/products"
	"github.com/GlebRadaev/snackvote/internal/pg"
	"github.com/GlebRadaev/snackvote/internal/repo"
	"github.com/GlebRadaev/snackvote/internal/session"
	"github.com/GlebRadaev/snackvote/internal/tipping"
	"github.com/GlebRadaev/snackvote/pkg/clients"

	balanceservice "github.com/GlebRadaev/snackvote/internal/service/balanceservice"
	officeservice "github.com/GlebRadaev/snackvote/internal/service/officeservice"
	productservice "github.com/GlebRadaev/snackvote/internal/service/productservice"
	settlementservice "github.com/GlebRadaev/snackvote/internal/service/settlementservice"
)

type Services struct {
	SettlementService session.Settler
	BalanceService    balance.Service
	OfficeService     offices.Service
	ProductService    products.Service
	TippingService    *tipping.Service
	SessionManager    *session.Manager
}

// New wires the services. Sessions settle on ctx, so it should outlive the
// request that opened them.
func New(ctx context.Context, cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, client clients.HTTPClientI) *Services {
	settlementService := settlementservice.New(txManager, repo.UserRepo, repo.VoteRepo, repo.OfficeRepo, cfg.EnforceVotingPeriod)
	balanceService := balanceservice.New(repo.UserRepo)
	officeService := officeservice.New(txManager, repo.OfficeRepo, repo.VoteRepo, repo.UserRepo)
	productService := productservice.New(repo.ProductRepo)
	tippingService := tipping.New(cfg, repo.OfficeRepo, client)
	manager := session.NewManager(ctx, cfg.VoteDebounce, settlementService, balanceService,
		tippingService, officeService, repo.VoteRepo)

	return &Services{
		SettlementService: settlementService,
		BalanceService:    balanceService,
		OfficeService:     officeService,
		ProductService:    productService,
		TippingService:    tippingService,
		SessionManager:    manager,
	}
}
