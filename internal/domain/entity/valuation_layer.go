package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockValuationLayer registro del valor de inventario creado por cada movimiento valorado.
type StockValuationLayer struct {
	ID              string
	CompanyID       string
	ProductID       string
	StockMoveID     string
	OperatingUnitID OptionalID
	Description     string
	Quantity        decimal.Decimal
	UnitCost        decimal.Decimal
	Value           decimal.Decimal
	AccountMoveID   OptionalID
	CreatedAt       time.Time
}
