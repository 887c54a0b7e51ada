package valuation_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/valuation"
)

const (
	testCompany  = "company-1"
	testJournal  = "journal-stock"
	accValuation = "acc-1105-valuation"
	accInput     = "acc-1410-input"
	accOutput    = "acc-6135-output"
	accPriceDiff = "acc-5195-price-diff"
	ouNorte      = "ou-norte"
	ouSur        = "ou-sur"
	ouBodega     = "ou-bodega"
	ouDropship   = "ou-dropship"
)

func loc(usage entity.LocationUsage, company string) entity.Location {
	return entity.Location{
		ID:        string(usage) + "-" + company,
		CompanyID: entity.SomeID(company),
		Name:      string(usage),
		Usage:     usage,
	}
}

func realTimeCategory() entity.ProductCategory {
	return entity.ProductCategory{
		ID:                      "cat-1",
		CompanyID:               testCompany,
		Name:                    "Equipos",
		Valuation:               entity.ValuationRealTime,
		CostMethod:              entity.CostMethodStandard,
		StockJournalID:          entity.SomeID(testJournal),
		StockInputAccountID:     entity.SomeID(accInput),
		StockOutputAccountID:    entity.SomeID(accOutput),
		StockValuationAccountID: entity.SomeID(accValuation),
		PriceDiffAccountID:      entity.SomeID(accPriceDiff),
	}
}

// newMove movimiento de 10 unidades a costo estándar 25 entre from y to.
func newMove(from, to entity.Location) *valuation.Move {
	return &valuation.Move{
		StockMove: entity.StockMove{
			ID:             "move-1",
			CompanyID:      testCompany,
			ProductID:      "prod-1",
			Name:           "Router AX",
			Quantity:       decimal.NewFromInt(10),
			LocationID:     from.ID,
			LocationDestID: to.ID,
			State:          entity.MoveStateAssigned,
		},
		Source: from,
		Dest:   to,
		Product: entity.Product{
			ID:            "prod-1",
			CompanyID:     testCompany,
			CategoryID:    "cat-1",
			SKU:           "RTR-AX",
			Name:          "Router AX",
			StandardPrice: decimal.NewFromInt(25),
		},
		Category: realTimeCategory(),
	}
}

func withPicking(m *valuation.Move, ou entity.OptionalID) *valuation.Move {
	m.Picking = &entity.Picking{
		ID:              "pick-1",
		CompanyID:       testCompany,
		Name:            "WH/INT/00007",
		OperatingUnitID: ou,
	}
	m.PickingID = entity.SomeID("pick-1")
	return m
}
