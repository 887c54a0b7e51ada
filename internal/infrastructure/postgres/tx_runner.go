package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-ou-api/internal/application/stockaccount"
)

var _ stockaccount.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// NewRepos arma el conjunto de repositorios de stock contable sobre q (pool o tx).
func NewRepos(q Querier) stockaccount.Repos {
	return stockaccount.Repos{
		Moves:        NewStockMoveRepository(q),
		Locations:    NewLocationRepository(q),
		Products:     NewProductRepository(q),
		Categories:   NewCategoryRepository(q),
		Pickings:     NewPickingRepository(q),
		PickingTypes: NewPickingTypeRepository(q),
		Warehouses:   NewWarehouseRepository(q),
		Stock:        NewStockRepository(q),
		Layers:       NewValuationLayerRepository(q),
		AccountMoves: NewAccountMoveRepository(q),
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos stockaccount.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
