package entity

import "time"

// Valoración de inventario de una categoría.
const (
	ValuationManual   = "manual_periodic"
	ValuationRealTime = "real_time"
)

// Métodos de costo.
const (
	CostMethodStandard = "standard"
	CostMethodAverage  = "average"
	CostMethodFIFO     = "fifo"
)

// ProductCategory categoría de productos con su política de valoración y cuentas contables.
type ProductCategory struct {
	ID                      string
	CompanyID               string
	Name                    string
	Valuation               string // manual_periodic, real_time
	CostMethod              string // standard, average, fifo
	StockJournalID          OptionalID
	StockInputAccountID     OptionalID
	StockOutputAccountID    OptionalID
	StockValuationAccountID OptionalID
	PriceDiffAccountID      OptionalID
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsRealTime informa si los movimientos generan asientos contables al momento.
func (c ProductCategory) IsRealTime() bool {
	return c.Valuation == ValuationRealTime
}
