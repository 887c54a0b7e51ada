package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot lote o número de serie de un producto.
type Lot struct {
	ID        string
	CompanyID string
	ProductID string
	Name      string
	CreatedAt time.Time
}

// LotAvailability lote con su cantidad en una ubicación.
type LotAvailability struct {
	Lot
	LocationID string
	Quantity   decimal.Decimal
}
