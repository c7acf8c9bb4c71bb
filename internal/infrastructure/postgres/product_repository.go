package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lecturas del catálogo de productos.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// ListByChain devuelve los productos activos de la cadena, paginados.
func (r *ProductRepo) ListByChain(ctx context.Context, chainID int64, limit, offset int) ([]entity.Product, error) {
	const query = `
	SELECT id, chain_id, COALESCE(category_id, 0), name, COALESCE(description, ''),
	       price, COALESCE(unit, ''), is_active, created_at, updated_at
	FROM products
	WHERE chain_id = $1 AND is_active = TRUE
	ORDER BY name ASC
	LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, chainID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("products.ListByChain: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.ChainID, &p.CategoryID, &p.Name, &p.Description,
			&p.Price, &p.Unit, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("products.ListByChain scan: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
