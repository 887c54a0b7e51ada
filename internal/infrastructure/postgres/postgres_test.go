package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// rowStub implementa pgx.Row devolviendo valores fijos.
type rowStub struct {
	vals []any
	err  error
}

func (r rowStub) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.vals[i].(int64)
		case *decimal.Decimal:
			*p = r.vals[i].(decimal.Decimal)
		default:
			return fmt.Errorf("tipo no soportado %T", d)
		}
	}
	return nil
}

// querierStub registra las consultas ejecutadas.
type querierStub struct {
	row   rowStub
	sqls  []string
	args  [][]any
	exErr error
}

func (q *querierStub) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sqls = append(q.sqls, sql)
	q.args = append(q.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), q.exErr
}

func (q *querierStub) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no implementado")
}

func (q *querierStub) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sqls = append(q.sqls, sql)
	q.args = append(q.args, args)
	return q.row
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("boom")))
}

func TestSchema_DeclaresTables(t *testing.T) {
	for _, table := range []string{
		"companies", "company_modules", "users", "operating_units", "warehouses",
		"stock_locations", "picking_types", "pickings", "product_categories", "products",
		"stock_moves", "stock_quants", "stock_lots", "stock_lot_quants",
		"account_moves", "account_move_lines", "stock_valuation_layers",
	} {
		assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS "+table+" (", table)
	}
}

func TestApplySchema(t *testing.T) {
	q := &querierStub{}
	require.NoError(t, ApplySchema(context.Background(), q))
	require.Len(t, q.sqls, 1)
	assert.Equal(t, Schema, q.sqls[0])

	q.exErr = errors.New("conexión cerrada")
	assert.Error(t, ApplySchema(context.Background(), q))
}

func TestAccountMoveRepo_NextName(t *testing.T) {
	q := &querierStub{row: rowStub{vals: []any{int64(7)}}}
	repo := NewAccountMoveRepository(q)

	name, err := repo.NextName(context.Background(), "journal-1", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "STJ/2024/00007", name)
	assert.Equal(t, []any{
		"journal-1",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}, q.args[0])
	assert.NotContains(t, q.sqls[0], "extract")
}

func TestAccountMoveRepo_NextNameFinDeAnoEnOtraZona(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)
	q := &querierStub{row: rowStub{vals: []any{int64(2)}}}
	repo := NewAccountMoveRepository(q)

	// 22:00 del 31 de diciembre en Bogotá ya es 2025 en UTC.
	date := time.Date(2024, 12, 31, 22, 0, 0, 0, bogota)
	name, err := repo.NextName(context.Background(), "journal-1", date)
	require.NoError(t, err)

	assert.Equal(t, "STJ/2024/00002", name)
	from := q.args[0][1].(time.Time)
	to := q.args[0][2].(time.Time)
	assert.True(t, from.Equal(time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)))
	assert.True(t, to.Equal(time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC)))
	assert.True(t, !date.Before(from) && date.Before(to), "el asiento queda dentro del rango que se cuenta")
}

func TestAccountMoveRepo_CreateNombreDuplicadoEsConflicto(t *testing.T) {
	q := &querierStub{exErr: &pgconn.PgError{Code: "23505"}}
	repo := NewAccountMoveRepository(q)

	err := repo.Create(context.Background(), &entity.AccountMove{ID: "am-1", Name: "STJ/2024/00001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "STJ/2024/00001")
}

func TestStockRepo_OnHand(t *testing.T) {
	q := &querierStub{row: rowStub{vals: []any{decimal.NewFromInt(12)}}}
	repo := NewStockRepository(q)

	qty, err := repo.OnHand(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, qty.Equal(decimal.NewFromInt(12)))
	assert.Contains(t, q.sqls[0], "sum(quantity)")
	assert.Equal(t, []any{"p1"}, q.args[0])
}

func TestStockRepo_MissingRowIsZero(t *testing.T) {
	q := &querierStub{row: rowStub{err: pgx.ErrNoRows}}
	repo := NewStockRepository(q)

	s, err := repo.GetForUpdate(context.Background(), "p1", "loc1")
	require.NoError(t, err)
	assert.Equal(t, "p1", s.ProductID)
	assert.Equal(t, "loc1", s.LocationID)
	assert.True(t, s.Quantity.IsZero())
	assert.Contains(t, q.sqls[0], "FOR UPDATE")
}
