package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// CommonLayerValues valores comunes de la capa de valoración de un movimiento,
// sin unidad operativa.
func CommonLayerValues(m *Move, qty, unitCost decimal.Decimal) entity.StockValuationLayer {
	description := m.Name
	if ref := m.PickingName(); ref != "" {
		description = ref + " - " + m.Product.Name
	}
	return entity.StockValuationLayer{
		CompanyID:   m.CompanyID,
		ProductID:   m.ProductID,
		StockMoveID: m.ID,
		Description: description,
		Quantity:    qty,
		UnitCost:    unitCost,
		Value:       qty.Mul(unitCost),
	}
}

// LayerOperatingUnit unidad operativa de la capa de valoración de m.
// Entrada → destino; salida → origen; dropship (o su devolución) → la del picking,
// que prevalece sobre las anteriores.
func LayerOperatingUnit(m *Move) entity.OptionalID {
	ou := entity.NoID
	if m.IsIn() {
		ou = m.OperatingUnitDestID
	}
	if m.IsOut() {
		ou = m.OperatingUnitID
	}
	if m.IsDropshipped() || m.IsDropshippedReturned() {
		ou = m.PickingOperatingUnitID()
	}
	return ou
}

// PrepareCommonLayerValues valores comunes con la unidad operativa ya imputada.
func PrepareCommonLayerValues(m *Move, qty, unitCost decimal.Decimal) entity.StockValuationLayer {
	layer := CommonLayerValues(m, qty, unitCost)
	layer.OperatingUnitID = LayerOperatingUnit(m)
	return layer
}
