package stockaccount

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/domain"
)

func TestAccountMoveUseCase(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit)
	ad, _ := newActionDone(s, nil)
	done, err := ad.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1"}})
	require.NoError(t, err)
	require.Len(t, done.AccountMoveIDs, 1)
	id := done.AccountMoveIDs[0]

	pdf := &fakePDF{}
	uc := NewAccountMoveUseCase(fakeAccountMoves{s}, fakeCompanies{s}, pdf)

	t.Run("detalle", func(t *testing.T) {
		resp, err := uc.GetByID(context.Background(), companyID, id)
		require.NoError(t, err)
		assert.Equal(t, "STJ/2024/00001", resp.Name)
		assert.Equal(t, "posted", resp.State)
		assert.True(t, resp.TotalDebit.Equal(decimal.NewFromInt(250)))
		assert.True(t, resp.TotalDebit.Equal(resp.TotalCredit))
		require.Len(t, resp.Lines, 2)
		assert.Equal(t, "move-1", *resp.StockMoveID)
	})

	t.Run("otra empresa", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), "company-2", id)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("no existe", func(t *testing.T) {
		_, err := uc.GetByID(context.Background(), companyID, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("pdf", func(t *testing.T) {
		body, name, err := uc.GeneratePDF(context.Background(), companyID, id)
		require.NoError(t, err)
		assert.True(t, pdf.called)
		assert.Equal(t, "STJ_2024_00001.pdf", name)
		assert.NotEmpty(t, body)
	})
}
