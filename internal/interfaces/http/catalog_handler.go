package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/application/usecase"
)

// CatalogHandler maneja las lecturas de tiendas, productos y categorías.
type CatalogHandler struct {
	stores     *usecase.StoreUseCase
	products   *usecase.ProductUseCase
	categories *usecase.CategoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(stores *usecase.StoreUseCase, products *usecase.ProductUseCase, categories *usecase.CategoryUseCase) *CatalogHandler {
	return &CatalogHandler{stores: stores, products: products, categories: categories}
}

// ListStores godoc
// @Summary      Listar tiendas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StoreResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *CatalogHandler) ListStores(c *fiber.Ctx) error {
	out, err := h.stores.List(c.Context(), GetChainID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error listando tiendas",
		})
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos
// @Description  Productos activos de la cadena, paginados.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página (default 20, max 100)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badParams(c)
	}
	out, err := h.products.List(c.Context(), GetChainID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error listando productos",
		})
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categories.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error listando categorías",
		})
	}
	return c.JSON(out)
}
