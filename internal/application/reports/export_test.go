package reports_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/application/reports"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// fakePDF captura el documento recibido y devuelve bytes fijos.
type fakePDF struct {
	doc reports.ReportDocument
}

func (f *fakePDF) Render(_ context.Context, doc reports.ReportDocument) ([]byte, error) {
	f.doc = doc
	return []byte("%PDF-fake"), nil
}

func TestExport_OrdersCSV(t *testing.T) {
	repo := &fakeRepo{orders: []entity.Order{
		orderRow(entity.OrderStatusDelivered, 100, "2026-01-01"),
		orderRow(entity.OrderStatusDelivered, 200, "2026-01-02"),
	}}
	svc := reports.NewService(repo, nil)

	out, err := svc.Export(context.Background(), 1, dto.ExportQuery{
		ReportQuery: dto.ReportQuery{GroupBy: "day"},
		Type:        "orders",
		Format:      "csv",
	})
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)
	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, "report-orders-"+today+".csv", out.Filename)

	lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,total,completed,revenue", lines[0])
	assert.Equal(t, "2026-01-01,1,1,100", lines[1])
	assert.Equal(t, "2026-01-02,1,1,200", lines[2])
}

// Escape CSV: coma, comillas y salto de línea obligan a envolver el campo.
func TestExport_InventoryCSVEscape(t *testing.T) {
	repo := &fakeRepo{
		inventory: []entity.InventoryRecord{
			{ItemID: 1, StoreID: 10, Quantity: qty(7), MinStockLevel: qty(2)},
		},
		itemNames: map[int64]string{1: `Rice, 5kg "Premium"`},
	}
	svc := reports.NewService(repo, nil)

	out, err := svc.Export(context.Background(), 1, dto.ExportQuery{Type: "inventory"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "itemId,itemName,quantity,minStockLevel,status", lines[0])
	assert.Equal(t, `1,"Rice, 5kg ""Premium""",7,2,ok`, lines[1])
}

// avgDeliveryHours ausente se serializa como campo vacío.
func TestExport_DeliveryCSVCampoOpcionalVacio(t *testing.T) {
	repo := &fakeRepo{shipments: []entity.Shipment{
		{Status: entity.ShipmentStatusFailed, ShippedAt: timePtr(mustTime("2026-01-01T08:00:00Z"))},
	}}
	svc := reports.NewService(repo, nil)

	out, err := svc.Export(context.Background(), 1, dto.ExportQuery{Type: "delivery"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,total,delivered,failed,avgDeliveryHours", lines[0])
	assert.Equal(t, "2026-01-01,1,0,1,", lines[1])
}

// El PDF renderiza el mismo documento tabular que el CSV.
func TestExport_PDF(t *testing.T) {
	repo := &fakeRepo{orders: []entity.Order{
		orderRow(entity.OrderStatusDelivered, 100, "2026-01-01"),
	}}
	pdf := &fakePDF{}
	svc := reports.NewService(repo, pdf)

	out, err := svc.Export(context.Background(), 1, dto.ExportQuery{
		ReportQuery: dto.ReportQuery{DateFrom: "2026-01-01", DateTo: "2026-01-31"},
		Type:        "orders",
		Format:      "pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", out.ContentType)
	assert.True(t, strings.HasSuffix(out.Filename, ".pdf"))
	assert.Equal(t, []byte("%PDF-fake"), out.Content)

	assert.Equal(t, "Reporte de pedidos", pdf.doc.Title)
	assert.Equal(t, "2026-01-01 – 2026-01-31", pdf.doc.Period)
	assert.Equal(t, []string{"date", "total", "completed", "revenue"}, pdf.doc.Columns)
	require.Len(t, pdf.doc.Rows, 1)
	assert.Equal(t, []string{"2026-01-01", "1", "1", "100"}, pdf.doc.Rows[0])
}

// Sin type se exporta orders; sin format se exporta CSV; valores desconocidos fallan.
func TestExport_DefaultsYValidacion(t *testing.T) {
	svc := reports.NewService(&fakeRepo{}, nil)

	out, err := svc.Export(context.Background(), 1, dto.ExportQuery{})
	require.NoError(t, err)
	assert.Contains(t, out.Filename, "report-orders-")
	assert.Equal(t, "text/csv; charset=utf-8", out.ContentType)

	_, err = svc.Export(context.Background(), 1, dto.ExportQuery{Type: "finanzas"})
	assert.Error(t, err)

	_, err = svc.Export(context.Background(), 1, dto.ExportQuery{Format: "xlsx"})
	assert.Error(t, err)
}
