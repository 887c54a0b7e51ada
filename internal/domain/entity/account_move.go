package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un asiento contable.
const (
	AccountMoveDraft  = "draft"
	AccountMovePosted = "posted"
)

// AccountMove asiento contable (cabecera).
type AccountMove struct {
	ID          string
	Name        string
	CompanyID   string
	JournalID   string
	Ref         string
	StockMoveID OptionalID
	State       string
	Date        time.Time
	PostedAt    *time.Time
	Lines       []AccountMoveLine
	CreatedAt   time.Time
}

// AccountMoveLine apunte contable; Debit y Credit nunca son negativos.
type AccountMoveLine struct {
	ID              string
	MoveID          string
	AccountID       string
	OperatingUnitID OptionalID
	PartnerID       OptionalID
	ProductID       string
	Name            string
	Ref             string
	Quantity        decimal.Decimal
	Debit           decimal.Decimal
	Credit          decimal.Decimal
}

// Totals suma de débitos y créditos del asiento.
func (m *AccountMove) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range m.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// IsBalanced informa si el asiento tiene al menos dos apuntes y cuadra.
func (m *AccountMove) IsBalanced() bool {
	if len(m.Lines) < 2 {
		return false
	}
	debit, credit := m.Totals()
	return debit.Equal(credit)
}
