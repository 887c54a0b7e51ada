package stockaccount

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/valuation"
)

// loadMove resuelve ubicaciones, producto, categoría, picking y bodega del movimiento.
func loadMove(ctx context.Context, r Repos, mv *entity.StockMove) (*valuation.Move, error) {
	src, err := r.Locations.GetByID(ctx, mv.LocationID)
	if err != nil {
		return nil, fmt.Errorf("ubicación origen %s: %w", mv.LocationID, err)
	}
	dest, err := r.Locations.GetByID(ctx, mv.LocationDestID)
	if err != nil {
		return nil, fmt.Errorf("ubicación destino %s: %w", mv.LocationDestID, err)
	}
	if src == nil || dest == nil {
		return nil, fmt.Errorf("ubicaciones del movimiento %s: %w", mv.ID, domain.ErrNotFound)
	}
	product, err := r.Products.GetByID(ctx, mv.ProductID)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", mv.ProductID, err)
	}
	if product == nil {
		return nil, fmt.Errorf("producto %s: %w", mv.ProductID, domain.ErrNotFound)
	}
	category, err := r.Categories.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("categoría %s: %w", product.CategoryID, err)
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %s: %w", product.CategoryID, domain.ErrNotFound)
	}

	m := &valuation.Move{
		StockMove: *mv,
		Source:    *src,
		Dest:      *dest,
		Product:   *product,
		Category:  *category,
	}

	pickingID, ok := mv.PickingID.Value()
	if !ok {
		return m, nil
	}
	picking, err := r.Pickings.GetByID(ctx, pickingID)
	if err != nil {
		return nil, fmt.Errorf("picking %s: %w", pickingID, err)
	}
	if picking == nil {
		return nil, fmt.Errorf("picking %s: %w", pickingID, domain.ErrNotFound)
	}
	m.Picking = picking

	pickingType, err := r.PickingTypes.GetByID(ctx, picking.PickingTypeID)
	if err != nil {
		return nil, fmt.Errorf("tipo de operación %s: %w", picking.PickingTypeID, err)
	}
	if pickingType == nil {
		return m, nil
	}
	warehouseID, ok := pickingType.WarehouseID.Value()
	if !ok {
		return m, nil
	}
	warehouse, err := r.Warehouses.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("bodega %s: %w", warehouseID, err)
	}
	if warehouse != nil {
		m.WarehouseOperatingUnitID = warehouse.OperatingUnitID
	}
	return m, nil
}
