package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActionDoneRequest movimientos a finalizar.
// CancelBackorder descarta el remanente de los movimientos parciales en vez de crear backorder.
type ActionDoneRequest struct {
	MoveIDs         []string `json:"move_ids" validate:"required,min=1,max=200,dive,uuid"`
	CancelBackorder bool     `json:"cancel_backorder"`
}

// BackorderDTO movimiento creado con el remanente de uno parcial.
type BackorderDTO struct {
	ID            string          `json:"id"`
	BackorderOfID string          `json:"backorder_of_id"`
	Quantity      decimal.Decimal `json:"quantity"`
}

// ValuationLayerDTO capa de valoración generada.
type ValuationLayerDTO struct {
	ID              string          `json:"id"`
	StockMoveID     string          `json:"stock_move_id"`
	OperatingUnitID *string         `json:"operating_unit_id"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	Value           decimal.Decimal `json:"value"`
	AccountMoveID   *string         `json:"account_move_id"`
}

// ActionDoneResponse resultado de finalizar movimientos.
type ActionDoneResponse struct {
	DoneMoveIDs    []string            `json:"done_move_ids"`
	SkippedMoveIDs []string            `json:"skipped_move_ids"`
	Backorders     []BackorderDTO      `json:"backorders"`
	Layers         []ValuationLayerDTO `json:"layers"`
	AccountMoveIDs []string            `json:"account_move_ids"`
}

// ValuationLinesRequest datos para previsualizar los apuntes de valoración de un movimiento.
type ValuationLinesRequest struct {
	Quantity        *decimal.Decimal `json:"quantity"`
	DebitValue      decimal.Decimal  `json:"debit_value"`
	CreditValue     decimal.Decimal  `json:"credit_value"`
	DebitAccountID  string           `json:"debit_account_id" validate:"required,uuid"`
	CreditAccountID string           `json:"credit_account_id" validate:"required,uuid"`
	Description     string           `json:"description" validate:"omitempty,max=250"`
}

// ValuationLineDTO apunte contable (previsualizado o persistido).
type ValuationLineDTO struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Ref             string          `json:"ref"`
	ProductID       string          `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	PartnerID       *string         `json:"partner_id"`
	AccountID       string          `json:"account_id"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	OperatingUnitID *string         `json:"operating_unit_id"`
}

// ValuationLinesResponse apuntes con su unidad operativa imputada.
type ValuationLinesResponse struct {
	StockMoveID string             `json:"stock_move_id"`
	Lines       []ValuationLineDTO `json:"lines"`
}

// AccountMoveResponse asiento contable con sus apuntes.
type AccountMoveResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	CompanyID   string             `json:"company_id"`
	JournalID   string             `json:"journal_id"`
	Ref         string             `json:"ref"`
	StockMoveID *string            `json:"stock_move_id"`
	State       string             `json:"state"`
	Date        time.Time          `json:"date"`
	PostedAt    *time.Time         `json:"posted_at"`
	TotalDebit  decimal.Decimal    `json:"total_debit"`
	TotalCredit decimal.Decimal    `json:"total_credit"`
	Lines       []ValuationLineDTO `json:"lines"`
}
