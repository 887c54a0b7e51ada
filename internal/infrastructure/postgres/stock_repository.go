package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación.
func (r *StockRepo) Get(ctx context.Context, productID, locationID string) (*entity.Stock, error) {
	const query = `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_quants WHERE product_id = $1 AND location_id = $2`
	return r.one(ctx, "get stock", query, productID, locationID)
}

// Upsert inserta o actualiza la cantidad en stock (por producto y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	const query = `
		INSERT INTO stock_quants (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.LocationID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.Stock, error) {
	const query = `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock_quants WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	return r.one(ctx, "get stock for update", query, productID, locationID)
}

// OnHand suma los quants del producto. Solo existen quants de ubicaciones internas o de tránsito.
func (r *StockRepo) OnHand(ctx context.Context, productID string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(sum(quantity), 0) FROM stock_quants WHERE product_id = $1`
	var qty decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID).Scan(&qty); err != nil {
		return decimal.Zero, fmt.Errorf("stock on hand: %w", err)
	}
	return qty, nil
}

// one devuelve stock en cero cuando aún no existe la fila.
func (r *StockRepo) one(ctx context.Context, op, query, productID, locationID string) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
