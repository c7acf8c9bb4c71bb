package usecase

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// OrderUseCase lecturas del listado de pedidos. La creación y el cambio de
// estado ocurren en el panel administrado; esta API solo consulta.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List lista pedidos de la cadena con paginación, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, chainID int64, q dto.OrderQuery) (*dto.OrderListResponse, error) {
	q.DefaultPage()
	rows, total, err := uc.repo.ListByChain(ctx, chainID, q.StoreID, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	items := make([]dto.OrderResponse, 0, len(rows))
	for _, o := range rows {
		items = append(items, toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}, nil
}

// GetByID devuelve el pedido con sus líneas; nil si no existe en la cadena.
func (uc *OrderUseCase) GetByID(ctx context.Context, chainID, id int64) (*dto.OrderResponse, error) {
	order, lines, err := uc.repo.GetByID(ctx, chainID, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido %d: %w", id, err)
	}
	if order == nil {
		return nil, nil
	}
	out := toOrderResponse(*order, lines)
	return &out, nil
}

func toOrderResponse(o entity.Order, lines []entity.OrderItem) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:          o.ID,
		StoreID:     o.StoreID,
		OrderNumber: o.OrderNumber,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	if !o.RequestedDate.IsZero() {
		out.RequestedDate = o.RequestedDate.Format("2006-01-02")
	}
	for _, l := range lines {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return out
}
