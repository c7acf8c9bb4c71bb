package usecase

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
)

// CategoryUseCase lecturas de categorías del catálogo.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return out, nil
}
