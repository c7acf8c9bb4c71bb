package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocinacentral/ckms-api/internal/application/reports"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
	"github.com/cocinacentral/ckms-api/internal/domain/repository"
	apphttp "github.com/cocinacentral/ckms-api/internal/interfaces/http"
	"github.com/cocinacentral/ckms-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de la fuente de filas de reportes
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportsRepo struct {
	orders    []entity.Order
	ordersErr error
}

func (f *fakeReportsRepo) ListOrders(context.Context, repository.OrderReportFilter) ([]entity.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeReportsRepo) ListShipments(context.Context, repository.ShipmentReportFilter) ([]entity.Shipment, error) {
	return nil, nil
}

func (f *fakeReportsRepo) CountPendingShipments(context.Context, int64) (int, error) {
	return 3, nil
}

func (f *fakeReportsRepo) CountStockAlerts(context.Context, int64) (int, error) {
	return 2, nil
}

func (f *fakeReportsRepo) ListProductionPlans(context.Context, int64) ([]entity.ProductionPlan, error) {
	return nil, nil
}

func (f *fakeReportsRepo) ListProductionDetails(context.Context, int64) ([]entity.ProductionDetail, error) {
	return nil, nil
}

func (f *fakeReportsRepo) ListInventory(context.Context, int64, int64) ([]entity.InventoryRecord, error) {
	return nil, nil
}

func (f *fakeReportsRepo) ListUnresolvedAlerts(context.Context, int64) ([]entity.Alert, error) {
	return nil, nil
}

func (f *fakeReportsRepo) GetItemNames(context.Context, []int64) (map[int64]string, error) {
	return map[int64]string{}, nil
}

func (f *fakeReportsRepo) GetStoreNames(context.Context, []int64) (map[int64]string, error) {
	return map[int64]string{}, nil
}

// buildAPIApp monta la app completa con el router real y la fuente fake.
func buildAPIApp(repo repository.ReportsRepository) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ReportsSvc: reports.NewService(repo, nil),
		Log:        logger.New(logger.Config{Env: "test", Level: "error"}),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func deliveredOrder(amount int64, day string) entity.Order {
	d, _ := time.Parse("2006-01-02", day)
	return entity.Order{
		Status:      entity.OrderStatusDelivered,
		TotalAmount: decimal.NewNullDecimal(decimal.NewFromInt(amount)),
		CreatedAt:   d.UTC(),
	}
}

func apiGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de extremo a extremo: JWT → router → handler → servicio → fake
// ──────────────────────────────────────────────────────────────────────────────

func TestReportsAPI_Overview(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{orders: []entity.Order{
		deliveredOrder(100, "2026-01-01"),
		deliveredOrder(250, "2026-01-02"),
	}})

	resp := apiGet(t, app, "/api/reports/overview", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalOrders       int    `json:"totalOrders"`
		CompletedOrders   int    `json:"completedOrders"`
		TotalRevenue      string `json:"totalRevenue"`
		LowStockItems     int    `json:"lowStockItems"`
		PendingDeliveries int    `json:"pendingDeliveries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.TotalOrders)
	assert.Equal(t, 2, body.CompletedOrders)
	assert.Equal(t, "350", body.TotalRevenue)
	assert.Equal(t, 2, body.LowStockItems)
	assert.Equal(t, 3, body.PendingDeliveries)
}

func TestReportsAPI_OrdersSerieJSON(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{orders: []entity.Order{
		deliveredOrder(100, "2026-01-01"),
		deliveredOrder(200, "2026-01-01"),
	}})

	resp := apiGet(t, app, "/api/reports/orders?groupBy=day", tokenForRole(t, "manager"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Series []struct {
			Date  string `json:"date"`
			Total int    `json:"total"`
		} `json:"series"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Series, 1)
	assert.Equal(t, "2026-01-01", body.Series[0].Date)
	assert.Equal(t, 2, body.Series[0].Total)
}

// Parámetros inválidos devuelven 400 con INVALID_PARAMS, no 500.
func TestReportsAPI_ParametrosInvalidos400(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{})

	resp := apiGet(t, app, "/api/reports/orders?groupBy=hour", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_PARAMS")
}

// Un fallo de la fuente de filas devuelve 500 genérico sin filtrar el detalle.
func TestReportsAPI_FalloDeFuente500(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{ordersErr: errors.New("conexión rechazada: 10.0.0.5")})

	resp := apiGet(t, app, "/api/reports/orders", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "REPORT_ERROR")
	assert.NotContains(t, string(body), "10.0.0.5",
		"el detalle del error interno no debe llegar a la respuesta")
}

// Los reportes exigen rol admin o manager.
func TestReportsAPI_RolStaffBloqueado(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{})

	resp := apiGet(t, app, "/api/reports/overview", tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Sin token no se llega a ningún endpoint de /api.
func TestReportsAPI_SinToken401(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{})

	resp := apiGet(t, app, "/api/reports/overview", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Exportación CSV: cabeceras de descarga y contenido con las filas del reporte.
func TestReportsAPI_ExportCSV(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{orders: []entity.Order{
		deliveredOrder(100, "2026-01-01"),
	}})

	resp := apiGet(t, app, "/api/reports/export?type=orders&format=csv", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report-orders-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,total,completed,revenue", lines[0])
	assert.Equal(t, "2026-01-01,1,1,100", lines[1])
}

// Un type de exportación desconocido es un error del cliente.
func TestReportsAPI_ExportTypeInvalido400(t *testing.T) {
	app := buildAPIApp(&fakeReportsRepo{})

	resp := apiGet(t, app, "/api/reports/export?type=finanzas", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
