package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/application/reports"
	"github.com/cocinacentral/ckms-api/internal/domain"
	"github.com/cocinacentral/ckms-api/pkg/logger"
)

// ReportsHandler maneja los endpoints de reportes y analítica.
type ReportsHandler struct {
	svc *reports.Service
	log *logger.Logger
}

// NewReportsHandler construye el handler.
func NewReportsHandler(svc *reports.Service, log *logger.Logger) *ReportsHandler {
	return &ReportsHandler{svc: svc, log: log}
}

// Overview godoc
// @Summary      Estadísticas del dashboard
// @Description  Totales de pedidos, ingresos, alertas de stock y entregas pendientes de la cadena.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OverviewDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/overview [get]
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	out, err := h.svc.Overview(c.Context(), GetChainID(c))
	if err != nil {
		return h.reportError(c, "overview", err)
	}
	return c.JSON(out)
}

// Orders godoc
// @Summary      Reporte de pedidos
// @Description  Serie temporal de pedidos agrupada por día/semana/mes más resumen global.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        dateFrom  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Fin del rango (YYYY-MM-DD, inclusivo)"
// @Param        storeId   query  int     false  "Filtrar por tienda"
// @Param        groupBy   query  string  false  "day | week | month (default day)"
// @Success      200  {object}  dto.OrdersReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/orders [get]
func (h *ReportsHandler) Orders(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.svc.Orders(c.Context(), GetChainID(c), q)
	if err != nil {
		return h.reportError(c, "orders", err)
	}
	return c.JSON(out)
}

// Production godoc
// @Summary      Reporte de producción
// @Description  Cantidades planificadas y producidas por bucket temporal, agrupadas por fecha de plan.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        dateFrom  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Fin del rango (YYYY-MM-DD, inclusivo)"
// @Param        groupBy   query  string  false  "day | week | month (default day)"
// @Success      200  {object}  dto.ProductionReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/production [get]
func (h *ReportsHandler) Production(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.svc.Production(c.Context(), GetChainID(c), q)
	if err != nil {
		return h.reportError(c, "production", err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Description  Existencias clasificadas por nivel de stock (ok/low/out) con alertas sin resolver.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        storeId  query  int  false  "Filtrar por tienda"
// @Success      200  {object}  dto.InventoryReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportsHandler) Inventory(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.svc.Inventory(c.Context(), GetChainID(c), q)
	if err != nil {
		return h.reportError(c, "inventory", err)
	}
	return c.JSON(out)
}

// Delivery godoc
// @Summary      Reporte de entregas
// @Description  Tasa de éxito de envíos y duración media de entrega por bucket temporal.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        dateFrom  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Fin del rango (YYYY-MM-DD, inclusivo)"
// @Param        groupBy   query  string  false  "day | week | month (default day)"
// @Success      200  {object}  dto.DeliveryReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/delivery [get]
func (h *ReportsHandler) Delivery(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.svc.Delivery(c.Context(), GetChainID(c), q)
	if err != nil {
		return h.reportError(c, "delivery", err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar un reporte
// @Description  Descarga el reporte indicado como CSV o PDF. CSV y PDF contienen las mismas filas.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/pdf
// @Param        type      query  string  false  "orders | production | inventory | delivery (default orders)"
// @Param        format    query  string  false  "csv | pdf (default csv)"
// @Param        dateFrom  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        dateTo    query  string  false  "Fin del rango (YYYY-MM-DD, inclusivo)"
// @Param        groupBy   query  string  false  "day | week | month (default day)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return badParams(c)
	}
	out, err := h.svc.Export(c.Context(), GetChainID(c), q)
	if err != nil {
		return h.reportError(c, "export", err)
	}

	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Content)
}

// reportError mapea errores del servicio: validación → 400 con el detalle,
// cualquier otra cosa → 500 genérico (el detalle queda en el log, no en la
// respuesta).
func (h *ReportsHandler) reportError(c *fiber.Ctx, report string, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: err.Error(),
		})
	}
	h.log.Error().Err(err).
		Str("report", report).
		Int64("chain_id", GetChainID(c)).
		Msg("reporte fallido")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "REPORT_ERROR", Message: "error generando el reporte",
	})
}

func badParams(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
	})
}
