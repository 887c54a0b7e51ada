package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.AccountMoveRepository = (*AccountMoveRepo)(nil)

// AccountMoveRepo asientos contables y sus apuntes sobre PostgreSQL.
type AccountMoveRepo struct {
	q Querier
}

// NewAccountMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountMoveRepository(q Querier) *AccountMoveRepo {
	return &AccountMoveRepo{q: q}
}

// Create inserta cabecera y apuntes. Debe llamarse dentro de una tx para que sea atómico.
func (r *AccountMoveRepo) Create(ctx context.Context, am *entity.AccountMove) error {
	const header = `
		INSERT INTO account_moves (id, name, company_id, journal_id, ref, stock_move_id, state, date, posted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, header,
		am.ID, am.Name, am.CompanyID, am.JournalID, am.Ref, am.StockMoveID.Ptr(),
		am.State, am.Date, am.PostedAt, am.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert account move %s: nombre duplicado: %w", am.Name, domain.ErrConflict)
		}
		return fmt.Errorf("insert account move: %w", err)
	}

	const line = `
		INSERT INTO account_move_lines (
			id, move_id, account_id, operating_unit_id, partner_id, product_id,
			name, ref, quantity, debit, credit, line_no
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	for i, l := range am.Lines {
		var product *string
		if l.ProductID != "" {
			product = &l.ProductID
		}
		_, err := r.q.Exec(ctx, line,
			l.ID, am.ID, l.AccountID, l.OperatingUnitID.Ptr(), l.PartnerID.Ptr(), product,
			l.Name, l.Ref, l.Quantity, l.Debit, l.Credit, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert account move line %d: %w", i+1, err)
		}
	}
	return nil
}

// GetByID obtiene el asiento con sus apuntes en el orden en que se generaron.
func (r *AccountMoveRepo) GetByID(ctx context.Context, id string) (*entity.AccountMove, error) {
	const header = `
		SELECT id, name, company_id, journal_id, ref, stock_move_id, state, date, posted_at, created_at
		FROM account_moves WHERE id = $1`
	var (
		am        entity.AccountMove
		stockMove *string
	)
	err := r.q.QueryRow(ctx, header, id).Scan(
		&am.ID, &am.Name, &am.CompanyID, &am.JournalID, &am.Ref, &stockMove,
		&am.State, &am.Date, &am.PostedAt, &am.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account move: %w", err)
	}
	am.StockMoveID = entity.OptionalIDFrom(stockMove)

	const lines = `
		SELECT id, move_id, account_id, operating_unit_id, partner_id, product_id,
		       name, ref, quantity, debit, credit
		FROM account_move_lines WHERE move_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, lines, id)
	if err != nil {
		return nil, fmt.Errorf("list account move lines: %w", err)
	}
	am.Lines, err = pgx.CollectRows(rows, scanAccountMoveLine)
	if err != nil {
		return nil, fmt.Errorf("scan account move lines: %w", err)
	}
	return &am, nil
}

// NextName siguiente secuencia del diario para el año de la fecha: STJ/2024/00001.
// El año se delimita en la zona horaria de date y no en la de la sesión.
func (r *AccountMoveRepo) NextName(ctx context.Context, journalID string, date time.Time) (string, error) {
	const query = `
		SELECT count(*) + 1 FROM account_moves
		WHERE journal_id = $1 AND date >= $2 AND date < $3`
	from, to := yearBounds(date)
	var seq int64
	if err := r.q.QueryRow(ctx, query, journalID, from, to).Scan(&seq); err != nil {
		return "", fmt.Errorf("next account move name: %w", err)
	}
	return fmt.Sprintf("STJ/%d/%05d", date.Year(), seq), nil
}

// yearBounds [1 de enero, 1 de enero siguiente) del año de t en su propia zona.
func yearBounds(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(1, 0, 0)
}

func scanAccountMoveLine(row pgx.CollectableRow) (entity.AccountMoveLine, error) {
	var (
		l                    entity.AccountMoveLine
		ou, partner, product *string
	)
	err := row.Scan(
		&l.ID, &l.MoveID, &l.AccountID, &ou, &partner, &product,
		&l.Name, &l.Ref, &l.Quantity, &l.Debit, &l.Credit,
	)
	if err != nil {
		return l, err
	}
	l.OperatingUnitID = entity.OptionalIDFrom(ou)
	l.PartnerID = entity.OptionalIDFrom(partner)
	if product != nil {
		l.ProductID = *product
	}
	return l, nil
}
