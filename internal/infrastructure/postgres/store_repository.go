package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo lecturas de tiendas.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// ListByChain devuelve las tiendas de la cadena ordenadas por nombre.
func (r *StoreRepo) ListByChain(ctx context.Context, chainID int64) ([]entity.Store, error) {
	const query = `
	SELECT id, chain_id, name, COALESCE(address, ''), type, COALESCE(phone, ''),
	       is_active, created_at, updated_at
	FROM stores
	WHERE chain_id = $1
	ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, chainID)
	if err != nil {
		return nil, fmt.Errorf("stores.ListByChain: %w", err)
	}
	defer rows.Close()

	var stores []entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(
			&s.ID, &s.ChainID, &s.Name, &s.Address, &s.Type, &s.Phone,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("stores.ListByChain scan: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}
