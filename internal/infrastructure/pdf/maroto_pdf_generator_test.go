package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"25000":     "25.000,00",
		"1234567.5": "1.234.567,50",
		"-1000.255": "-1.000,26",
		"999.994":   "999,99",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)), in)
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", shortID("3f2a9c1e-0000-4000-8000-000000000000"))
	assert.Equal(t, "—", shortID("—"))
}

func TestGenerateAccountMovePDF(t *testing.T) {
	posted := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)
	move := &entity.AccountMove{
		ID:          "9d1b7a52-1111-4000-8000-000000000001",
		Name:        "STJ/2024/00001",
		JournalID:   "journal-1",
		Ref:         "WH/INT/00003",
		StockMoveID: entity.SomeID("move-1"),
		State:       entity.AccountMovePosted,
		Date:        posted,
		PostedAt:    &posted,
		Lines: []entity.AccountMoveLine{
			{AccountID: "acc-a", OperatingUnitID: entity.SomeID("ou-1"), Name: "Transferencia", Debit: decimal.NewFromInt(150)},
			{AccountID: "acc-a", OperatingUnitID: entity.SomeID("ou-2"), Name: "Transferencia", Credit: decimal.NewFromInt(150)},
		},
	}
	company := &entity.Company{Name: "Distribuidora Andina", NIT: "900123456-7"}

	out, err := NewMarotoPDFGenerator().GenerateAccountMovePDF(context.Background(), move, company)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateAccountMovePDF_RequiresInputs(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateAccountMovePDF(context.Background(), nil, &entity.Company{})
	assert.Error(t, err)
}
