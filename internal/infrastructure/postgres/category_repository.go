package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo lecturas de categorías del catálogo.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	const query = `
	SELECT id, name, COALESCE(description, '')
	FROM categories
	ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("categories.List: %w", err)
	}
	defer rows.Close()

	var categories []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("categories.List scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
