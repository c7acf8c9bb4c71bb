package usecase

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos activos de la cadena, paginados.
func (uc *ProductUseCase) List(ctx context.Context, chainID int64, page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByChain(ctx, chainID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			CategoryID:  p.CategoryID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Unit:        p.Unit,
			IsActive:    p.IsActive,
		})
	}
	return out, nil
}
