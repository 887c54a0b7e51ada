package valuation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// AccountingData diario y cuentas de stock del producto (vía su categoría).
type AccountingData struct {
	JournalID             string
	StockInputAccount     entity.OptionalID
	StockOutputAccount    entity.OptionalID
	StockValuationAccount string
}

// AccountingDataFor obtiene el diario y las cuentas de valoración del movimiento.
// El diario y la cuenta de valoración son obligatorios.
func AccountingDataFor(m *Move) (AccountingData, error) {
	journal, ok := m.Category.StockJournalID.Value()
	if !ok {
		return AccountingData{}, domain.NewUserError(domain.ErrAccountingDataMissing, m.Category.Name)
	}
	valuation, ok := m.Category.StockValuationAccountID.Value()
	if !ok {
		return AccountingData{}, domain.NewUserError(domain.ErrAccountingDataMissing, m.Category.Name)
	}
	return AccountingData{
		JournalID:             journal,
		StockInputAccount:     m.Category.StockInputAccountID,
		StockOutputAccount:    m.Category.StockOutputAccountID,
		StockValuationAccount: valuation,
	}, nil
}

// NewAccountMove arma un asiento en borrador a partir de los apuntes generados.
func NewAccountMove(m *Move, journalID string, lines LineSet, now time.Time) *entity.AccountMove {
	am := &entity.AccountMove{
		CompanyID:   m.CompanyID,
		JournalID:   journalID,
		Ref:         m.PickingName(),
		StockMoveID: entity.SomeID(m.ID),
		State:       entity.AccountMoveDraft,
		Date:        now,
		CreatedAt:   now,
	}
	for _, l := range lines.All() {
		am.Lines = append(am.Lines, entity.AccountMoveLine{
			AccountID:       l.AccountID,
			OperatingUnitID: l.OperatingUnitID,
			PartnerID:       l.PartnerID,
			ProductID:       l.ProductID,
			Name:            l.Name,
			Ref:             l.Ref,
			Quantity:        l.Quantity,
			Debit:           l.Debit,
			Credit:          l.Credit,
		})
	}
	return am
}

// Post valida que el asiento cuadre y lo deja contabilizado.
func Post(am *entity.AccountMove, now time.Time) error {
	if am.State == entity.AccountMovePosted {
		return fmt.Errorf("asiento %s ya contabilizado: %w", am.Name, domain.ErrConflict)
	}
	if !am.IsBalanced() {
		return domain.NewUserError(domain.ErrUnbalancedMove, am.Ref)
	}
	am.State = entity.AccountMovePosted
	am.PostedAt = &now
	return nil
}

// AverageCost costo promedio ponderado tras una entrada.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Sin existencias positivas el costo pasa a ser el de la entrada.
func AverageCost(onHand, currentCost, incomingQty, incomingCost decimal.Decimal) decimal.Decimal {
	if !onHand.IsPositive() {
		return incomingCost
	}
	sum := onHand.Add(incomingQty)
	if !sum.IsPositive() {
		return incomingCost
	}
	num := onHand.Mul(currentCost).Add(incomingQty.Mul(incomingCost))
	return num.Div(sum)
}

// UpdatesStandardPrice informa si la entrada de m recalcula el costo del producto:
// solo entradas a stock en categorías de costo promedio o FIFO.
func UpdatesStandardPrice(m *Move) bool {
	switch m.Category.CostMethod {
	case entity.CostMethodAverage, entity.CostMethodFIFO:
		return m.IsIn()
	}
	return false
}

// StandardPriceAfterReceipt costo del producto tras recibir qty con onHand existencias previas.
func StandardPriceAfterReceipt(m *Move, onHand, qty decimal.Decimal) decimal.Decimal {
	return AverageCost(onHand, m.Product.StandardPrice, qty, IncomingUnitCost(m))
}
