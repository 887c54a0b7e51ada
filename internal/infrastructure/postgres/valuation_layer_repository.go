package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.ValuationLayerRepository = (*ValuationLayerRepo)(nil)

// ValuationLayerRepo capas de valoración sobre PostgreSQL.
type ValuationLayerRepo struct {
	q Querier
}

// NewValuationLayerRepository construye el adaptador.
func NewValuationLayerRepository(q Querier) *ValuationLayerRepo {
	return &ValuationLayerRepo{q: q}
}

// Create persiste una capa de valoración.
func (r *ValuationLayerRepo) Create(ctx context.Context, l *entity.StockValuationLayer) error {
	const query = `
		INSERT INTO stock_valuation_layers (
			id, company_id, product_id, stock_move_id, operating_unit_id, description,
			quantity, unit_cost, value, account_move_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		l.ID, l.CompanyID, l.ProductID, l.StockMoveID, l.OperatingUnitID.Ptr(), l.Description,
		l.Quantity, l.UnitCost, l.Value, l.AccountMoveID.Ptr(), l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert valuation layer: %w", err)
	}
	return nil
}

// ListByMove lista las capas generadas por un movimiento, en orden de creación.
func (r *ValuationLayerRepo) ListByMove(ctx context.Context, stockMoveID string) ([]*entity.StockValuationLayer, error) {
	const query = `
		SELECT id, company_id, product_id, stock_move_id, operating_unit_id, description,
		       quantity, unit_cost, value, account_move_id, created_at
		FROM stock_valuation_layers WHERE stock_move_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, stockMoveID)
	if err != nil {
		return nil, fmt.Errorf("list valuation layers: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockValuationLayer
	for rows.Next() {
		var (
			l           entity.StockValuationLayer
			ou, accMove *string
		)
		if err := rows.Scan(
			&l.ID, &l.CompanyID, &l.ProductID, &l.StockMoveID, &ou, &l.Description,
			&l.Quantity, &l.UnitCost, &l.Value, &accMove, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan valuation layer: %w", err)
		}
		l.OperatingUnitID = entity.OptionalIDFrom(ou)
		l.AccountMoveID = entity.OptionalIDFrom(accMove)
		list = append(list, &l)
	}
	return list, rows.Err()
}
