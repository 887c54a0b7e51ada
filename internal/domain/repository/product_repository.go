package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStandardPrice fija el costo del producto tras una entrada a costo promedio.
	UpdateStandardPrice(ctx context.Context, id string, price decimal.Decimal) error
}
