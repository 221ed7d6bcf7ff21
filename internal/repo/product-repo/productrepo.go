package productrepo

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

func (r *Repository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (id, name, category, price, image_url, tags, is_active, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Category, product.Price,
		product.ImageURL, product.Tags, product.IsActive, product.AddedBy,
	).Scan(&product.CreatedAt)
	if err != nil {
		zap.L().Error("can't save product", zap.String("name", product.Name), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (r *Repository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price, image_url, tags, is_active, added_by, created_at
		FROM products
		WHERE id = $1
	`
	var p domain.Product
	err := r.db.QueryRow(ctx, query, productID).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImageURL, &p.Tags, &p.IsActive, &p.AddedBy, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find product", zap.String("productID", productID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, includeInactive bool) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price, image_url, tags, is_active, added_by, created_at
		FROM products
		WHERE is_active OR $1
		ORDER BY category ASC, name ASC
	`
	rows, err := r.db.Query(ctx, query, includeInactive)
	if err != nil {
		zap.L().Error("can't get products", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.ImageURL, &p.Tags, &p.IsActive, &p.AddedBy, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan product row", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// SetActive toggles the soft delete flag. Vote rows are left untouched.
func (r *Repository) SetActive(ctx context.Context, productID string, active bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET is_active = $1 WHERE id = $2`, active, productID)
	if err != nil {
		zap.L().Error("can't update product", zap.String("productID", productID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
