package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un movimiento de stock.
const (
	MoveStateDraft     = "draft"
	MoveStateConfirmed = "confirmed"
	MoveStateAssigned  = "assigned"
	MoveStateDone      = "done"
	MoveStateCancel    = "cancel"
)

// StockMove movimiento de una cantidad de producto entre dos ubicaciones.
type StockMove struct {
	ID                  string
	CompanyID           string
	ProductID           string
	Name                string
	Quantity            decimal.Decimal  // demanda
	QuantityDone        decimal.Decimal  // cero = se asume la demanda completa
	PriceUnit           *decimal.Decimal // precio de compra, si lo hay
	LocationID          string
	LocationDestID      string
	OperatingUnitID     OptionalID // unidad operativa origen
	OperatingUnitDestID OptionalID // unidad operativa destino
	PickingID           OptionalID
	PartnerID           OptionalID
	BackorderOfID       OptionalID
	State               string
	Date                time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsFinal informa si el movimiento ya no puede procesarse.
func (m StockMove) IsFinal() bool {
	return m.State == MoveStateDone || m.State == MoveStateCancel
}

// EffectiveQuantity cantidad que se da por hecha al finalizar.
func (m StockMove) EffectiveQuantity() decimal.Decimal {
	if m.QuantityDone.IsPositive() {
		return m.QuantityDone
	}
	return m.Quantity
}
