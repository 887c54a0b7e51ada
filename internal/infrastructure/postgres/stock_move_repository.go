package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

const stockMoveColumns = `id, company_id, product_id, name, quantity, quantity_done, price_unit,
	location_id, location_dest_id, operating_unit_id, operating_unit_dest_id,
	picking_id, partner_id, backorder_of_id, state, date, created_at, updated_at`

// StockMoveRepo implementación de StockMoveRepository sobre PostgreSQL (usable con pool o tx).
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Create persiste un movimiento de stock (p. ej. un backorder).
func (r *StockMoveRepo) Create(ctx context.Context, m *entity.StockMove) error {
	const query = `
		INSERT INTO stock_moves (` + stockMoveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.CompanyID, m.ProductID, m.Name, m.Quantity, m.QuantityDone, m.PriceUnit,
		m.LocationID, m.LocationDestID, m.OperatingUnitID.Ptr(), m.OperatingUnitDestID.Ptr(),
		m.PickingID.Ptr(), m.PartnerID.Ptr(), m.BackorderOfID.Ptr(), m.State, m.Date, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMoveRepo) GetByID(ctx context.Context, id string) (*entity.StockMove, error) {
	const query = `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE id = $1`
	return r.one(ctx, "get stock move", query, id)
}

// GetForUpdate obtiene el movimiento de la empresa y bloquea la fila hasta el fin de la tx.
func (r *StockMoveRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.StockMove, error) {
	const query = `
		SELECT ` + stockMoveColumns + `
		FROM stock_moves WHERE company_id = $1 AND id = $2
		FOR UPDATE`
	return r.one(ctx, "get stock move for update", query, companyID, id)
}

// Update guarda cantidades y estado del movimiento.
func (r *StockMoveRepo) Update(ctx context.Context, m *entity.StockMove) error {
	const query = `
		UPDATE stock_moves
		SET quantity = $2, quantity_done = $3, state = $4, date = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, m.ID, m.Quantity, m.QuantityDone, m.State, m.Date, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock move: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock move %s: no rows", m.ID)
	}
	return nil
}

func (r *StockMoveRepo) one(ctx context.Context, op, query string, args ...any) (*entity.StockMove, error) {
	m, err := scanStockMove(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

func scanStockMove(row pgxScanner) (*entity.StockMove, error) {
	var (
		m                                     entity.StockMove
		ou, ouDest, picking, partner, backord *string
	)
	if err := row.Scan(
		&m.ID, &m.CompanyID, &m.ProductID, &m.Name, &m.Quantity, &m.QuantityDone, &m.PriceUnit,
		&m.LocationID, &m.LocationDestID, &ou, &ouDest,
		&picking, &partner, &backord, &m.State, &m.Date, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.OperatingUnitID = entity.OptionalIDFrom(ou)
	m.OperatingUnitDestID = entity.OptionalIDFrom(ouDest)
	m.PickingID = entity.OptionalIDFrom(picking)
	m.PartnerID = entity.OptionalIDFrom(partner)
	m.BackorderOfID = entity.OptionalIDFrom(backord)
	return &m, nil
}
