package valuation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// Result capas y asiento generados al valorar un movimiento hecho.
type Result struct {
	Layers []entity.StockValuationLayer
	Entry  *entity.AccountMove // nil si el movimiento no genera asiento
}

// IncomingUnitCost costo unitario de una entrada: precio de compra salvo costo estándar.
func IncomingUnitCost(m *Move) decimal.Decimal {
	if m.PriceUnit != nil && m.Category.CostMethod != entity.CostMethodStandard {
		return *m.PriceUnit
	}
	return m.Product.StandardPrice
}

// ValueMove capas de valoración y asiento en tiempo real de un movimiento hecho por qty.
// Devuelve un Result vacío si el producto no es de valoración en tiempo real o si el
// movimiento no entra, sale ni es dropship.
func ValueMove(m *Move, qty decimal.Decimal, now time.Time) (Result, error) {
	if !m.Category.IsRealTime() {
		return Result{}, nil
	}
	var (
		res           Result
		debitAccount  entity.OptionalID
		creditAccount entity.OptionalID
		debitValue    decimal.Decimal
		creditValue   decimal.Decimal
	)
	data, err := AccountingDataFor(m)
	if err != nil {
		return Result{}, err
	}
	valuationAccount := entity.SomeID(data.StockValuationAccount)

	switch {
	case m.IsIn():
		unitCost := IncomingUnitCost(m)
		res.Layers = append(res.Layers, PrepareCommonLayerValues(m, qty, unitCost))
		debitAccount, creditAccount = valuationAccount, data.StockInputAccount
		debitValue = qty.Mul(unitCost)
		creditValue = debitValue
		if m.PriceUnit != nil && m.Category.CostMethod == entity.CostMethodStandard {
			creditValue = qty.Mul(*m.PriceUnit)
		}
	case m.IsOut():
		unitCost := m.Product.StandardPrice
		res.Layers = append(res.Layers, PrepareCommonLayerValues(m, qty.Neg(), unitCost))
		debitAccount, creditAccount = data.StockOutputAccount, valuationAccount
		debitValue = qty.Mul(unitCost)
		creditValue = debitValue
	case m.IsDropshipped(), m.IsDropshippedReturned():
		unitCost := IncomingUnitCost(m)
		res.Layers = append(res.Layers,
			PrepareCommonLayerValues(m, qty, unitCost),
			PrepareCommonLayerValues(m, qty.Neg(), unitCost),
		)
		debitAccount, creditAccount = data.StockOutputAccount, data.StockInputAccount
		if m.IsDropshippedReturned() {
			debitAccount, creditAccount = data.StockInputAccount, data.StockOutputAccount
		}
		debitValue = qty.Mul(unitCost)
		creditValue = debitValue
	default:
		return Result{}, nil
	}

	if !debitAccount.IsSet() || !creditAccount.IsSet() {
		return Result{}, domain.NewUserError(domain.ErrAccountingDataMissing, m.Category.Name)
	}
	lines, err := ValuationLines(m, LineRequest{
		PartnerID:       m.PartnerID,
		Quantity:        qty,
		DebitValue:      debitValue,
		CreditValue:     creditValue,
		DebitAccountID:  debitAccount.String(),
		CreditAccountID: creditAccount.String(),
		Description:     entryDescription(m),
	})
	if err != nil {
		return Result{}, err
	}
	res.Entry = NewAccountMove(m, data.JournalID, lines, now)
	return res, nil
}

// NeedsInterUnitEntry informa si m traslada stock en tiempo real entre dos unidades
// operativas distintas de la misma empresa, entre ubicaciones internas o de tránsito.
func NeedsInterUnitEntry(m *Move) bool {
	if !m.Category.IsRealTime() {
		return false
	}
	company, ok := m.Source.CompanyID.Value()
	if !ok || !m.Dest.CompanyID.Equal(entity.SomeID(company)) {
		return false
	}
	if !m.Source.IsInternalOrTransit() || !m.Dest.IsInternalOrTransit() {
		return false
	}
	return !m.OperatingUnitID.Equal(m.OperatingUnitDestID)
}

// InterUnitDescription descripción de los apuntes del traslado entre unidades operativas.
func InterUnitDescription(m *Move) string {
	return fmt.Sprintf("%s - OU Move", m.Product.DisplayName())
}

// BuildInterUnitEntry asiento que pasa el valor estándar de qty de la unidad operativa
// origen a la destino, con débito y crédito sobre la cuenta de valoración.
func BuildInterUnitEntry(m *Move, qty decimal.Decimal, now time.Time) (*entity.AccountMove, error) {
	data, err := AccountingDataFor(m)
	if err != nil {
		return nil, err
	}
	cost := m.StandardValue(qty)
	lines, err := ValuationLines(m, LineRequest{
		PartnerID:       m.PartnerID,
		Quantity:        qty,
		DebitValue:      cost,
		CreditValue:     cost,
		DebitAccountID:  data.StockValuationAccount,
		CreditAccountID: data.StockValuationAccount,
		Description:     InterUnitDescription(m),
	})
	if err != nil {
		return nil, err
	}
	return NewAccountMove(m, data.JournalID, lines, now), nil
}

func entryDescription(m *Move) string {
	if ref := m.PickingName(); ref != "" {
		return ref + " - " + m.Product.DisplayName()
	}
	return m.Product.DisplayName()
}
