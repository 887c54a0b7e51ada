package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock cantidad disponible de un producto en una ubicación (quant).
type Stock struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
