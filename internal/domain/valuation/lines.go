package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// LineRequest datos para generar los apuntes de valoración de un movimiento.
type LineRequest struct {
	PartnerID       entity.OptionalID
	Quantity        decimal.Decimal
	DebitValue      decimal.Decimal
	CreditValue     decimal.Decimal
	DebitAccountID  string
	CreditAccountID string
	Description     string
}

// LineValues datos de un apunte antes de persistirlo.
type LineValues struct {
	Name            string
	Ref             string
	ProductID       string
	Quantity        decimal.Decimal
	PartnerID       entity.OptionalID
	AccountID       string
	Debit           decimal.Decimal
	Credit          decimal.Decimal
	OperatingUnitID entity.OptionalID
}

// LineSet apuntes de valoración de un movimiento. PriceDiff es nil si los valores
// de débito y crédito coinciden.
type LineSet struct {
	Debit     LineValues
	Credit    LineValues
	PriceDiff *LineValues
}

// All devuelve los apuntes en orden débito, crédito, diferencia de precio.
func (s LineSet) All() []LineValues {
	lines := []LineValues{s.Debit, s.Credit}
	if s.PriceDiff != nil {
		lines = append(lines, *s.PriceDiff)
	}
	return lines
}

// GenerateLines construye los apuntes débito/crédito del movimiento y, si los valores
// difieren, el apunte de diferencia de precio contra la cuenta del producto o de su categoría.
// Un valor negativo pasa al lado contrario del mismo apunte.
func GenerateLines(m *Move, req LineRequest) (LineSet, error) {
	debit := LineValues{
		Name:      req.Description,
		Ref:       req.Description,
		ProductID: m.ProductID,
		Quantity:  req.Quantity,
		PartnerID: req.PartnerID,
		AccountID: req.DebitAccountID,
		Debit:     positive(req.DebitValue),
		Credit:    positive(req.DebitValue.Neg()),
	}
	credit := LineValues{
		Name:      req.Description,
		Ref:       req.Description,
		ProductID: m.ProductID,
		Quantity:  req.Quantity,
		PartnerID: req.PartnerID,
		AccountID: req.CreditAccountID,
		Debit:     positive(req.CreditValue.Neg()),
		Credit:    positive(req.CreditValue),
	}
	set := LineSet{Debit: debit, Credit: credit}

	if req.CreditValue.Equal(req.DebitValue) {
		return set, nil
	}
	diff := req.DebitValue.Sub(req.CreditValue)
	account := m.Product.PriceDiffAccountID.Or(m.Category.PriceDiffAccountID)
	if !account.IsSet() {
		return LineSet{}, domain.NewUserError(domain.ErrPriceDiffAccountMissing, m.Product.DisplayName())
	}
	set.PriceDiff = &LineValues{
		Name:      m.Name,
		Ref:       req.Description,
		ProductID: m.ProductID,
		Quantity:  req.Quantity,
		PartnerID: req.PartnerID,
		AccountID: account.String(),
		Debit:     positive(diff.Neg()),
		Credit:    positive(diff),
	}
	return set, nil
}

// FallbackOperatingUnit unidad operativa a usar cuando el movimiento no tiene ni origen
// ni destino: la de la bodega del tipo de operación y, si no hay (dropship), la del picking.
func FallbackOperatingUnit(m *Move) entity.OptionalID {
	if m.OperatingUnitID.IsSet() || m.OperatingUnitDestID.IsSet() {
		return entity.NoID
	}
	return entity.FirstSetID(m.WarehouseOperatingUnitID, m.PickingOperatingUnitID())
}

// AttributeLines imputa unidad operativa a cada apunte de lines.
//
// Débito: respaldo, destino, origen. Crédito y diferencia de precio: respaldo, origen, destino.
// Rechaza el movimiento si cruza unidades operativas con cuentas de débito y crédito distintas.
func AttributeLines(m *Move, lines *LineSet) error {
	src, dest := m.OperatingUnitID, m.OperatingUnitDestID
	if src.IsSet() && dest.IsSet() && !src.Equal(dest) &&
		lines.Debit.AccountID != lines.Credit.AccountID {
		return domain.NewUserError(domain.ErrMixedOperatingUnitAccounts, m.Product.DisplayName())
	}

	fallback := FallbackOperatingUnit(m)
	lines.Debit.OperatingUnitID = entity.FirstSetID(fallback, dest, src)
	lines.Credit.OperatingUnitID = entity.FirstSetID(fallback, src, dest)
	if lines.PriceDiff != nil {
		lines.PriceDiff.OperatingUnitID = entity.FirstSetID(fallback, src, dest)
	}
	return nil
}

// ValuationLines genera los apuntes de valoración de m y les imputa unidad operativa.
func ValuationLines(m *Move, req LineRequest) (LineSet, error) {
	lines, err := GenerateLines(m, req)
	if err != nil {
		return LineSet{}, err
	}
	if err := AttributeLines(m, &lines); err != nil {
		return LineSet{}, err
	}
	return lines, nil
}

func positive(d decimal.Decimal) decimal.Decimal {
	if d.IsPositive() {
		return d
	}
	return decimal.Zero
}
