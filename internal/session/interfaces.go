package session

import (
	"context"

	"github.com/GlebRadaev/snackvote/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=session

type Settler interface {
	Settle(ctx context.Context, userID, productID, officeID string, voteChange, cost int) (*domain.SettlementResult, error)
}

type BalanceReader interface {
	GetBalance(ctx context.Context, userID string) (*domain.User, error)
}

type Tipper interface {
	TipForSettlement(ctx context.Context, fromUserID, officeID string, amount float64)
}

type OfficeReader interface {
	GetOffice(ctx context.Context, officeID string) (*domain.Office, error)
}

type VoteReader interface {
	GetProductVotes(ctx context.Context, productID, officeID string) (*domain.ProductVotes, error)
}
