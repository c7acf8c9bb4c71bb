package reports

import (
	"context"
	"fmt"

	"github.com/cocinacentral/ckms-api/internal/application/dto"
	"github.com/cocinacentral/ckms-api/internal/domain/entity"
)

// Inventory construye el reporte de inventario: lista plana de existencias
// clasificadas por nivel de stock (no es una serie temporal), con nombres de
// ítem y tienda resueltos por lote, más las alertas sin resolver.
func (s *Service) Inventory(ctx context.Context, chainID int64, q dto.ReportQuery) (*dto.InventoryReportDTO, error) {
	records, err := s.repo.ListInventory(ctx, chainID, q.StoreID)
	if err != nil {
		return nil, rowSourceErr("reporte de inventario: existencias", err)
	}

	itemIDs, storeIDs := distinctRefs(records)

	// Nombres y alertas en paralelo: tres lecturas independientes
	type namesResult struct {
		names map[int64]string
		err   error
	}
	type alertsResult struct {
		rows []entity.Alert
		err  error
	}

	itemsCh := make(chan namesResult, 1)
	storesCh := make(chan namesResult, 1)
	alertsCh := make(chan alertsResult, 1)

	go func() {
		names, err := s.namesByID(ctx, itemIDs, s.repo.GetItemNames)
		itemsCh <- namesResult{names, err}
	}()
	go func() {
		names, err := s.namesByID(ctx, storeIDs, s.repo.GetStoreNames)
		storesCh <- namesResult{names, err}
	}()
	go func() {
		rows, err := s.repo.ListUnresolvedAlerts(ctx, chainID)
		alertsCh <- alertsResult{rows, err}
	}()

	items := <-itemsCh
	stores := <-storesCh
	alerts := <-alertsCh

	if items.err != nil {
		return nil, rowSourceErr("reporte de inventario: ítems", items.err)
	}
	if stores.err != nil {
		return nil, rowSourceErr("reporte de inventario: tiendas", stores.err)
	}
	if alerts.err != nil {
		return nil, rowSourceErr("reporte de inventario: alertas", alerts.err)
	}

	out := &dto.InventoryReportDTO{
		Items:  make([]dto.InventoryItemDTO, 0, len(records)),
		Alerts: make([]dto.InventoryAlertDTO, 0, len(alerts.rows)),
	}
	out.Summary.TotalItems = len(records)

	for _, rec := range records {
		status := rec.StockStatus()
		switch status {
		case entity.StockStatusLow:
			out.Summary.LowStockCount++
		case entity.StockStatusOut:
			out.Summary.OutOfStockCount++
		}
		name := items.names[rec.ItemID]
		if name == "" {
			name = fmt.Sprintf("Item %d", rec.ItemID)
		}
		out.Items = append(out.Items, dto.InventoryItemDTO{
			ItemID:        rec.ItemID,
			ItemName:      name,
			StoreID:       rec.StoreID,
			StoreName:     stores.names[rec.StoreID],
			Quantity:      rec.Quantity,
			MinStockLevel: rec.MinStockLevel,
			Status:        string(status),
		})
	}

	for _, a := range alerts.rows {
		out.Alerts = append(out.Alerts, dto.InventoryAlertDTO{
			ID:        a.ID,
			Message:   a.Message,
			AlertType: string(a.AlertType),
			StoreID:   a.StoreID,
		})
	}

	return out, nil
}

// namesByID evita la consulta cuando no hay ids que resolver.
func (s *Service) namesByID(
	ctx context.Context,
	ids []int64,
	lookup func(context.Context, []int64) (map[int64]string, error),
) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	return lookup(ctx, ids)
}

// distinctRefs devuelve los ids distintos de ítem y tienda referenciados.
func distinctRefs(records []entity.InventoryRecord) (itemIDs, storeIDs []int64) {
	seenItems := make(map[int64]bool, len(records))
	seenStores := make(map[int64]bool, len(records))
	for _, r := range records {
		if !seenItems[r.ItemID] {
			seenItems[r.ItemID] = true
			itemIDs = append(itemIDs, r.ItemID)
		}
		if !seenStores[r.StoreID] {
			seenStores[r.StoreID] = true
			storeIDs = append(storeIDs, r.StoreID)
		}
	}
	return itemIDs, storeIDs
}
