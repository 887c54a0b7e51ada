// Package valuation contiene las reglas de valoración de stock por unidad operativa:
// a qué unidad operativa se imputa cada capa de valoración y cada apunte contable
// generado por un movimiento, y el asiento de traslado entre unidades operativas.
//
// Las funciones son puras: reciben un Move resuelto y devuelven datos. La persistencia
// y la contabilización las hace quien las llama (application/stockaccount).
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// Move vista resuelta de un movimiento de stock con todo lo que necesitan las reglas.
type Move struct {
	entity.StockMove
	Source   entity.Location
	Dest     entity.Location
	Product  entity.Product
	Category entity.ProductCategory
	// Picking es nil si el movimiento no pertenece a una transferencia.
	Picking *entity.Picking
	// WarehouseOperatingUnitID unidad operativa de la bodega del tipo de operación del picking.
	WarehouseOperatingUnitID entity.OptionalID
}

// IsIn entrada a stock valorado (recepción, ajuste positivo).
func (m *Move) IsIn() bool {
	return !m.Source.ShouldBeValued() && m.Dest.ShouldBeValued()
}

// IsOut salida de stock valorado (entrega, ajuste negativo).
func (m *Move) IsOut() bool {
	return m.Source.ShouldBeValued() && !m.Dest.ShouldBeValued()
}

// IsDropshipped proveedor → cliente sin pasar por bodega.
func (m *Move) IsDropshipped() bool {
	return m.Source.Usage == entity.UsageSupplier && m.Dest.Usage == entity.UsageCustomer
}

// IsDropshippedReturned devolución de un dropship: cliente → proveedor.
func (m *Move) IsDropshippedReturned() bool {
	return m.Source.Usage == entity.UsageCustomer && m.Dest.Usage == entity.UsageSupplier
}

// PickingOperatingUnitID unidad operativa del picking, vacía si no hay picking.
func (m *Move) PickingOperatingUnitID() entity.OptionalID {
	if m.Picking == nil {
		return entity.NoID
	}
	return m.Picking.OperatingUnitID
}

// PickingName referencia del picking, vacía si no hay picking.
func (m *Move) PickingName() string {
	if m.Picking == nil {
		return ""
	}
	return m.Picking.Name
}

// StandardValue cantidad × costo estándar del producto.
func (m *Move) StandardValue(qty decimal.Decimal) decimal.Decimal {
	return qty.Mul(m.Product.StandardPrice)
}
