package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/application/usecase"
)

// OrderHandler maneja las lecturas del listado de pedidos.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Description  Pedidos de la cadena paginados, más recientes primero.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda"
// @Param        limit    query  int  false  "Tamaño de página (default 20, max 100)"
// @Param        offset   query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.uc.List(c.Context(), GetChainID(c), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error listando pedidos",
		})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un pedido
// @Description  Pedido con sus líneas. 404 si no existe o pertenece a otra cadena.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badParams(c)
	}
	out, err := h.uc.GetByID(c.Context(), GetChainID(c), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error obteniendo el pedido",
		})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "pedido no encontrado",
		})
	}
	return c.JSON(out)
}
