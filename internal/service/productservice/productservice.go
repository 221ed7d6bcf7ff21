package productservice

import (
	"context"
	"errors"
	"strings"

	"github.com/GlebRadaev/snackvote/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=productservice.go -destination=mock_productservice.go -package=productservice

type Repo interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Product, error)
	SetActive(ctx context.Context, productID string, active bool) (bool, error)
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("product name is required and price must not be negative")
)

type Service struct {
	repo  Repo
	newID func() string
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Create adds an active product to the catalog on behalf of addedBy.
func (s *Service) Create(ctx context.Context, addedBy string, product domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price < 0 {
		return nil, ErrInvalidProduct
	}
	product.ID = s.newID()
	product.IsActive = true
	product.AddedBy = addedBy
	if product.Tags == nil {
		product.Tags = []string{}
	}

	created, err := s.repo.Create(ctx, &product)
	if err != nil {
		return nil, err
	}
	zap.L().Info("product added", zap.String("productID", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) List(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	products, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// SetActive soft deletes or restores a product. Votes cast for it are kept.
func (s *Service) SetActive(ctx context.Context, productID string, active bool) error {
	found, err := s.repo.SetActive(ctx, productID, active)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	return nil
}
