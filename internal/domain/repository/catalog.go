package repository

import (
	"context"

	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// OrderRepository lecturas del listado de pedidos (la creación y el cambio de
// estado viven en el panel administrado, fuera de esta API).
type OrderRepository interface {
	// ListByChain lista pedidos paginados, más recientes primero.
	// storeID 0 significa todas las tiendas. Devuelve también el total.
	ListByChain(ctx context.Context, chainID, storeID int64, limit, offset int) ([]entity.Order, int, error)

	// GetByID devuelve el pedido con sus líneas; (nil, nil, nil) si no existe
	// o pertenece a otra cadena.
	GetByID(ctx context.Context, chainID, id int64) (*entity.Order, []entity.OrderItem, error)
}

// StoreRepository lecturas de tiendas.
type StoreRepository interface {
	ListByChain(ctx context.Context, chainID int64) ([]entity.Store, error)
}

// ProductRepository lecturas del catálogo de productos.
type ProductRepository interface {
	ListByChain(ctx context.Context, chainID int64, limit, offset int) ([]entity.Product, error)
}

// CategoryRepository lecturas de categorías (compartidas entre cadenas).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
