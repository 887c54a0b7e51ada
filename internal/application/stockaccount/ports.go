// Package stockaccount orquesta la finalización de movimientos de stock y su
// contabilización por unidad operativa.
package stockaccount

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

// Repos repositorios que usa el flujo de stock contable. Dentro de TxRunner.Run
// todos están atados a la misma transacción.
type Repos struct {
	Moves        repository.StockMoveRepository
	Locations    repository.LocationRepository
	Products     repository.ProductRepository
	Categories   repository.CategoryRepository
	Pickings     repository.PickingRepository
	PickingTypes repository.PickingTypeRepository
	Warehouses   repository.WarehouseRepository
	Stock        repository.StockRepository
	Layers       repository.ValuationLayerRepository
	AccountMoves repository.AccountMoveRepository
}

// TxRunner ejecuta fn dentro de una transacción de BD con repos atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// AccountMovePostedEvent notificación de un asiento contabilizado.
type AccountMovePostedEvent struct {
	AccountMoveID string          `json:"account_move_id"`
	Name          string          `json:"name"`
	CompanyID     string          `json:"company_id"`
	JournalID     string          `json:"journal_id"`
	Ref           string          `json:"ref"`
	StockMoveID   *string         `json:"stock_move_id"`
	Amount        decimal.Decimal `json:"amount"`
	InterUnit     bool            `json:"inter_unit"`
	PostedAt      time.Time       `json:"posted_at"`
}

// EventPublisher publica eventos de asientos contabilizados (Kafka u otro broker).
type EventPublisher interface {
	PublishAccountMovePosted(ctx context.Context, events ...AccountMovePostedEvent) error
}

// AccountMovePDFGenerator genera el comprobante PDF de un asiento.
type AccountMovePDFGenerator interface {
	GenerateAccountMovePDF(ctx context.Context, move *entity.AccountMove, company *entity.Company) ([]byte, error)
}
