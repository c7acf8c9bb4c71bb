package usecase

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// StoreUseCase lecturas de tiendas de la cadena.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// List devuelve las tiendas de la cadena.
func (uc *StoreUseCase) List(ctx context.Context, chainID int64) ([]dto.StoreResponse, error) {
	stores, err := uc.repo.ListByChain(ctx, chainID)
	if err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreResponse{
			ID:       s.ID,
			Name:     s.Name,
			Address:  s.Address,
			Type:     string(s.Type),
			Phone:    s.Phone,
			IsActive: s.IsActive,
		})
	}
	return out, nil
}
