package stockaccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/pkg/logger"
)

const (
	companyID    = "company-1"
	accValuation = "acc-1105"
	accInput     = "acc-1410"
	accOutput    = "acc-6135"
	ouNorte      = "ou-norte"
	ouSur        = "ou-sur"
	ouBodega     = "ou-bodega"
)

var fixedNow = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

// seed empresa con dos unidades operativas, bodega y un producto de valoración en tiempo real.
func seed() *memStore {
	s := newMemStore()
	s.companies[companyID] = entity.Company{ID: companyID, Name: "Distribuciones Andinas", NIT: "900123456"}
	for _, l := range []entity.Location{
		{ID: "loc-norte", CompanyID: entity.SomeID(companyID), OperatingUnitID: entity.SomeID(ouNorte), Name: "Norte/Stock", Usage: entity.UsageInternal},
		{ID: "loc-sur", CompanyID: entity.SomeID(companyID), OperatingUnitID: entity.SomeID(ouSur), Name: "Sur/Stock", Usage: entity.UsageInternal},
		{ID: "loc-supplier", Name: "Proveedores", Usage: entity.UsageSupplier},
		{ID: "loc-customer", Name: "Clientes", Usage: entity.UsageCustomer},
	} {
		s.locations[l.ID] = l
	}
	s.categories["cat-1"] = entity.ProductCategory{
		ID:                      "cat-1",
		CompanyID:               companyID,
		Name:                    "Equipos de red",
		Valuation:               entity.ValuationRealTime,
		CostMethod:              entity.CostMethodStandard,
		StockJournalID:          entity.SomeID("journal-stj"),
		StockInputAccountID:     entity.SomeID(accInput),
		StockOutputAccountID:    entity.SomeID(accOutput),
		StockValuationAccountID: entity.SomeID(accValuation),
	}
	s.categories["cat-manual"] = entity.ProductCategory{ID: "cat-manual", CompanyID: companyID, Name: "Consumibles", Valuation: entity.ValuationManual}
	s.products["prod-1"] = entity.Product{ID: "prod-1", CompanyID: companyID, CategoryID: "cat-1", SKU: "RTR-AX", Name: "Router AX", StandardPrice: decimal.NewFromInt(25)}
	s.products["prod-manual"] = entity.Product{ID: "prod-manual", CompanyID: companyID, CategoryID: "cat-manual", SKU: "CBL", Name: "Cable", StandardPrice: decimal.NewFromInt(2)}
	s.warehouses["wh-1"] = entity.Warehouse{ID: "wh-1", CompanyID: companyID, OperatingUnitID: entity.SomeID(ouBodega), Code: "WH", Name: "Principal"}
	s.pickingTypes["pt-in"] = entity.PickingType{ID: "pt-in", CompanyID: companyID, WarehouseID: entity.SomeID("wh-1"), Code: entity.PickingTypeIncoming, Name: "Recepciones"}
	s.pickings["pick-in"] = entity.Picking{ID: "pick-in", CompanyID: companyID, Name: "WH/IN/00003", PickingTypeID: "pt-in"}
	return s
}

func addMove(s *memStore, id, from, to string, qty int64, mutate ...func(*entity.StockMove)) {
	m := entity.StockMove{
		ID:             id,
		CompanyID:      companyID,
		ProductID:      "prod-1",
		Name:           "Router AX",
		Quantity:       decimal.NewFromInt(qty),
		LocationID:     from,
		LocationDestID: to,
		State:          entity.MoveStateAssigned,
	}
	for _, fn := range mutate {
		fn(&m)
	}
	s.moves[id] = m
}

func interUnit(m *entity.StockMove) {
	m.OperatingUnitID = entity.SomeID(ouNorte)
	m.OperatingUnitDestID = entity.SomeID(ouSur)
}

func newActionDone(s *memStore, pub EventPublisher) (*ActionDoneUseCase, *fakeTx) {
	tx := &fakeTx{store: s}
	uc := NewActionDoneUseCase(tx, pub, logger.Nop())
	uc.now = func() time.Time { return fixedNow }
	return uc, tx
}

func TestActionDone_TrasladoEntreUnidadesCadaMovimientoLlevaAsiento(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit)
	addMove(s, "move-2", "loc-norte", "loc-sur", 4, interUnit)
	pub := &recordingPublisher{}
	uc, _ := newActionDone(s, pub)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1", "move-2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"move-1", "move-2"}, resp.DoneMoveIDs)
	assert.Empty(t, resp.Layers, "un traslado interno no crea capas")
	require.Len(t, s.accountMoves, 2)
	assert.Len(t, resp.AccountMoveIDs, 2)

	for i, want := range []int64{250, 100} {
		am := s.accountMoves[i]
		assert.Equal(t, entity.AccountMovePosted, am.State)
		assert.Equal(t, companyID, am.CompanyID)
		assert.Equal(t, "journal-stj", am.JournalID)
		require.Len(t, am.Lines, 2)
		assert.Equal(t, accValuation, am.Lines[0].AccountID)
		assert.Equal(t, accValuation, am.Lines[1].AccountID)
		assert.True(t, am.Lines[0].Debit.Equal(decimal.NewFromInt(want)))
		assert.True(t, am.Lines[1].Credit.Equal(decimal.NewFromInt(want)))
		assert.Equal(t, entity.SomeID(ouSur), am.Lines[0].OperatingUnitID)
		assert.Equal(t, entity.SomeID(ouNorte), am.Lines[1].OperatingUnitID)
		assert.Equal(t, "[RTR-AX] Router AX - OU Move", am.Lines[0].Name)
	}
	assert.Equal(t, entity.SomeID("move-1"), s.accountMoves[0].StockMoveID)
	assert.Equal(t, entity.SomeID("move-2"), s.accountMoves[1].StockMoveID)

	assert.True(t, s.quantity("prod-1", "loc-norte").Equal(decimal.NewFromInt(-14)))
	assert.True(t, s.quantity("prod-1", "loc-sur").Equal(decimal.NewFromInt(14)))
	assert.Equal(t, entity.MoveStateDone, s.moves["move-1"].State)

	require.Len(t, pub.events, 2)
	assert.True(t, pub.events[0].InterUnit)
	assert.True(t, pub.events[0].Amount.Equal(decimal.NewFromInt(250)))
}

func TestActionDone_MismaUnidadNoGeneraAsiento(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, func(m *entity.StockMove) {
		m.OperatingUnitID = entity.SomeID(ouNorte)
		m.OperatingUnitDestID = entity.SomeID(ouNorte)
	})
	uc, _ := newActionDone(s, nil)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1"}})
	require.NoError(t, err)

	assert.Empty(t, resp.AccountMoveIDs)
	assert.Empty(t, s.accountMoves)
}

func TestActionDone_RecepcionCreaCapaYAsiento(t *testing.T) {
	s := seed()
	addMove(s, "move-in", "loc-supplier", "loc-norte", 10, func(m *entity.StockMove) {
		m.OperatingUnitDestID = entity.SomeID(ouNorte)
		m.PickingID = entity.SomeID("pick-in")
	})
	uc, _ := newActionDone(s, nil)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-in"}})
	require.NoError(t, err)

	require.Len(t, s.layers, 1)
	layer := s.layers[0]
	assert.Equal(t, entity.SomeID(ouNorte), layer.OperatingUnitID)
	assert.True(t, layer.Value.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "WH/IN/00003 - Router AX", layer.Description)

	require.Len(t, s.accountMoves, 1)
	am := s.accountMoves[0]
	assert.Equal(t, entity.SomeID(am.ID), layer.AccountMoveID)
	assert.Equal(t, "WH/IN/00003", am.Ref)
	assert.Equal(t, accValuation, am.Lines[0].AccountID)
	assert.Equal(t, accInput, am.Lines[1].AccountID)
	for _, l := range am.Lines {
		assert.Equal(t, entity.SomeID(ouNorte), l.OperatingUnitID)
	}
	require.Len(t, resp.Layers, 1)
	assert.Equal(t, ouNorte, *resp.Layers[0].OperatingUnitID)
	assert.True(t, s.quantity("prod-1", "loc-norte").Equal(decimal.NewFromInt(10)))
	assert.True(t, s.quantity("prod-1", "loc-supplier").IsZero(), "las ubicaciones de proveedor no llevan quants")
}

func TestActionDone_SinUnidadesUsaLaDeLaBodega(t *testing.T) {
	s := seed()
	addMove(s, "move-in", "loc-supplier", "loc-norte", 2, func(m *entity.StockMove) {
		m.PickingID = entity.SomeID("pick-in")
	})
	uc, _ := newActionDone(s, nil)

	_, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-in"}})
	require.NoError(t, err)

	require.Len(t, s.accountMoves, 1)
	for _, l := range s.accountMoves[0].Lines {
		assert.Equal(t, entity.SomeID(ouBodega), l.OperatingUnitID)
	}
	assert.False(t, s.layers[0].OperatingUnitID.IsSet(), "la capa solo mira las unidades del movimiento")
}

func TestActionDone_CuentasMezcladasRevierteTodo(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit)
	addMove(s, "move-out", "loc-norte", "loc-customer", 3, interUnit)
	uc, _ := newActionDone(s, nil)

	_, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1", "move-out"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMixedOperatingUnitAccounts))
	assert.True(t, domain.IsUserError(err))
	assert.Equal(t, entity.MoveStateAssigned, s.moves["move-1"].State)
	assert.Empty(t, s.accountMoves)
	assert.Empty(t, s.stock)
}

func TestActionDone_Parcial(t *testing.T) {
	tests := []struct {
		name            string
		cancelBackorder bool
		wantBackorders  int
	}{
		{"crea backorder", false, 1},
		{"sin backorder", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seed()
			addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit, func(m *entity.StockMove) {
				m.QuantityDone = decimal.NewFromInt(4)
			})
			uc, _ := newActionDone(s, nil)

			resp, err := uc.ActionDone(context.Background(), ActionDoneInput{
				CompanyID:       companyID,
				MoveIDs:         []string{"move-1"},
				CancelBackorder: tt.cancelBackorder,
			})
			require.NoError(t, err)

			require.Len(t, resp.Backorders, tt.wantBackorders)
			done := s.moves["move-1"]
			assert.True(t, done.Quantity.Equal(decimal.NewFromInt(4)))
			assert.Equal(t, entity.MoveStateDone, done.State)
			require.Len(t, s.accountMoves, 1)
			assert.True(t, s.accountMoves[0].Lines[0].Debit.Equal(decimal.NewFromInt(100)))

			if tt.wantBackorders == 1 {
				bo := s.moves[resp.Backorders[0].ID]
				assert.Equal(t, entity.MoveStateConfirmed, bo.State)
				assert.True(t, bo.Quantity.Equal(decimal.NewFromInt(6)))
				assert.True(t, bo.QuantityDone.IsZero())
				assert.Equal(t, entity.SomeID("move-1"), bo.BackorderOfID)
				assert.Equal(t, entity.SomeID(ouSur), bo.OperatingUnitDestID)
			} else {
				assert.Len(t, s.moves, 1)
			}
		})
	}
}

func TestActionDone_Errores(t *testing.T) {
	s := seed()
	addMove(s, "move-done", "loc-norte", "loc-sur", 1, func(m *entity.StockMove) { m.State = entity.MoveStateDone })
	addMove(s, "move-ok", "loc-norte", "loc-sur", 1, interUnit)
	addMove(s, "move-over", "loc-norte", "loc-sur", 1, func(m *entity.StockMove) { m.QuantityDone = decimal.NewFromInt(3) })
	uc, tx := newActionDone(s, nil)
	ctx := context.Background()

	_, err := uc.ActionDone(ctx, ActionDoneInput{CompanyID: companyID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.runs, "sin movimientos no se abre transacción")

	_, err = uc.ActionDone(ctx, ActionDoneInput{CompanyID: "otra", MoveIDs: []string{"move-ok"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ActionDone(ctx, ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-over"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActionDone_IdsDuplicadosSeProcesanUnaVez(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit)
	uc, _ := newActionDone(s, nil)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1", "move-1", ""}})
	require.NoError(t, err)

	assert.Equal(t, []string{"move-1"}, resp.DoneMoveIDs)
	assert.Len(t, s.accountMoves, 1)
}

func TestActionDone_ValoracionManualSoloMueveStock(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 5, interUnit, func(m *entity.StockMove) { m.ProductID = "prod-manual" })
	uc, _ := newActionDone(s, nil)

	_, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1"}})
	require.NoError(t, err)

	assert.Empty(t, s.accountMoves)
	assert.Empty(t, s.layers)
	assert.True(t, s.quantity("prod-manual", "loc-sur").Equal(decimal.NewFromInt(5)))
}

func TestActionDone_FalloDelBrokerNoRevierte(t *testing.T) {
	s := seed()
	addMove(s, "move-1", "loc-norte", "loc-sur", 10, interUnit)
	pub := &recordingPublisher{err: errors.New("kafka caído")}
	uc, _ := newActionDone(s, pub)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-1"}})
	require.NoError(t, err)

	assert.Len(t, resp.AccountMoveIDs, 1)
	assert.Len(t, s.accountMoves, 1)
	assert.Len(t, pub.events, 1)
}

func TestActionDone_MovimientosFinalizadosSeOmiten(t *testing.T) {
	s := seed()
	addMove(s, "move-done", "loc-norte", "loc-sur", 1, interUnit, func(m *entity.StockMove) { m.State = entity.MoveStateDone })
	addMove(s, "move-cancel", "loc-norte", "loc-sur", 1, interUnit, func(m *entity.StockMove) { m.State = entity.MoveStateCancel })
	addMove(s, "move-ok", "loc-norte", "loc-sur", 2, interUnit)
	uc, _ := newActionDone(s, nil)

	resp, err := uc.ActionDone(context.Background(), ActionDoneInput{
		CompanyID: companyID,
		MoveIDs:   []string{"move-done", "move-ok", "move-cancel"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"move-ok"}, resp.DoneMoveIDs)
	assert.Equal(t, []string{"move-done", "move-cancel"}, resp.SkippedMoveIDs)
	require.Len(t, s.accountMoves, 1)
	assert.Equal(t, entity.SomeID("move-ok"), s.accountMoves[0].StockMoveID)
	assert.Equal(t, entity.MoveStateCancel, s.moves["move-cancel"].State)
	assert.True(t, s.quantity("prod-1", "loc-sur").Equal(decimal.NewFromInt(2)))
}

func averageCost(s *memStore) {
	c := s.categories["cat-1"]
	c.CostMethod = entity.CostMethodAverage
	s.categories["cat-1"] = c
}

func priceUnit(v int64) func(*entity.StockMove) {
	return func(m *entity.StockMove) {
		p := decimal.NewFromInt(v)
		m.PriceUnit = &p
	}
}

func TestActionDone_CostoPromedioSeActualizaConLaEntrada(t *testing.T) {
	s := seed()
	averageCost(s)
	addMove(s, "move-in", "loc-supplier", "loc-norte", 10, priceUnit(40), func(m *entity.StockMove) {
		m.OperatingUnitDestID = entity.SomeID(ouNorte)
	})
	addMove(s, "move-out", "loc-norte", "loc-customer", 10, func(m *entity.StockMove) {
		m.OperatingUnitID = entity.SomeID(ouNorte)
	})
	uc, _ := newActionDone(s, nil)
	ctx := context.Background()

	_, err := uc.ActionDone(ctx, ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-in"}})
	require.NoError(t, err)
	assert.True(t, s.products["prod-1"].StandardPrice.Equal(decimal.NewFromInt(40)), "sin existencias previas el costo es el de la entrada")

	_, err = uc.ActionDone(ctx, ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-out"}})
	require.NoError(t, err)

	require.Len(t, s.layers, 2)
	assert.True(t, s.layers[0].Value.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.layers[1].Value.Equal(decimal.NewFromInt(-400)), "la salida se valora al costo promedio vigente")
	total := s.layers[0].Value.Add(s.layers[1].Value)
	assert.True(t, total.IsZero(), "sin existencias no queda valor en la cuenta de valoración")
}

func TestActionDone_CostoPromedioPondera(t *testing.T) {
	s := seed()
	averageCost(s)
	s.stock["prod-1/loc-sur"] = entity.Stock{ProductID: "prod-1", LocationID: "loc-sur", Quantity: decimal.NewFromInt(10)}
	addMove(s, "move-in", "loc-supplier", "loc-norte", 10, priceUnit(40))
	addMove(s, "move-std", "loc-supplier", "loc-norte", 10, priceUnit(40), func(m *entity.StockMove) { m.ProductID = "prod-manual" })
	uc, _ := newActionDone(s, nil)

	_, err := uc.ActionDone(context.Background(), ActionDoneInput{CompanyID: companyID, MoveIDs: []string{"move-in", "move-std"}})
	require.NoError(t, err)

	// (10 * 25 + 10 * 40) / 20
	assert.True(t, s.products["prod-1"].StandardPrice.Equal(decimal.RequireFromString("32.5")))
	assert.True(t, s.products["prod-manual"].StandardPrice.Equal(decimal.NewFromInt(2)), "categoría sin costo promedio no cambia")
}
