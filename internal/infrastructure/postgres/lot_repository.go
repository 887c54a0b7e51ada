package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo lotes y sus cantidades por ubicación sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador.
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// ListAvailableInLocation lotes del producto con cantidad positiva en la ubicación.
func (r *LotRepo) ListAvailableInLocation(ctx context.Context, companyID, productID, locationID string) ([]*entity.LotAvailability, error) {
	const query = `
		SELECT l.id, l.company_id, l.product_id, l.name, l.created_at, q.location_id, q.quantity
		FROM stock_lots l
		JOIN stock_lot_quants q ON q.lot_id = l.id
		WHERE l.company_id = $1 AND l.product_id = $2 AND q.location_id = $3 AND q.quantity > 0
		ORDER BY l.name`
	rows, err := r.q.Query(ctx, query, companyID, productID, locationID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.LotAvailability
	for rows.Next() {
		var la entity.LotAvailability
		if err := rows.Scan(
			&la.ID, &la.CompanyID, &la.ProductID, &la.Name, &la.CreatedAt, &la.LocationID, &la.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &la)
	}
	return list, rows.Err()
}
