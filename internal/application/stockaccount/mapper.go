package stockaccount

import (
	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/valuation"
)

func toLayerDTO(l *entity.StockValuationLayer) dto.ValuationLayerDTO {
	return dto.ValuationLayerDTO{
		ID:              l.ID,
		StockMoveID:     l.StockMoveID,
		OperatingUnitID: l.OperatingUnitID.Ptr(),
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitCost:        l.UnitCost,
		Value:           l.Value,
		AccountMoveID:   l.AccountMoveID.Ptr(),
	}
}

func toPostedEvent(am *entity.AccountMove) AccountMovePostedEvent {
	debit, _ := am.Totals()
	ev := AccountMovePostedEvent{
		AccountMoveID: am.ID,
		Name:          am.Name,
		CompanyID:     am.CompanyID,
		JournalID:     am.JournalID,
		Ref:           am.Ref,
		StockMoveID:   am.StockMoveID.Ptr(),
		Amount:        debit,
		InterUnit:     isInterUnit(am),
	}
	if am.PostedAt != nil {
		ev.PostedAt = *am.PostedAt
	}
	return ev
}

// isInterUnit un asiento de traslado usa la misma cuenta en todos sus apuntes
// y los reparte en más de una unidad operativa.
func isInterUnit(am *entity.AccountMove) bool {
	if len(am.Lines) < 2 {
		return false
	}
	first := am.Lines[0]
	units := false
	for _, l := range am.Lines[1:] {
		if l.AccountID != first.AccountID {
			return false
		}
		if !l.OperatingUnitID.Equal(first.OperatingUnitID) {
			units = true
		}
	}
	return units
}

func toPreviewLineDTO(l valuation.LineValues) dto.ValuationLineDTO {
	return dto.ValuationLineDTO{
		Name:            l.Name,
		Ref:             l.Ref,
		ProductID:       l.ProductID,
		Quantity:        l.Quantity,
		PartnerID:       l.PartnerID.Ptr(),
		AccountID:       l.AccountID,
		Debit:           l.Debit,
		Credit:          l.Credit,
		OperatingUnitID: l.OperatingUnitID.Ptr(),
	}
}

func toAccountMoveResponse(am *entity.AccountMove) *dto.AccountMoveResponse {
	debit, credit := am.Totals()
	resp := &dto.AccountMoveResponse{
		ID:          am.ID,
		Name:        am.Name,
		CompanyID:   am.CompanyID,
		JournalID:   am.JournalID,
		Ref:         am.Ref,
		StockMoveID: am.StockMoveID.Ptr(),
		State:       am.State,
		Date:        am.Date,
		PostedAt:    am.PostedAt,
		TotalDebit:  debit,
		TotalCredit: credit,
		Lines:       make([]dto.ValuationLineDTO, 0, len(am.Lines)),
	}
	for _, l := range am.Lines {
		resp.Lines = append(resp.Lines, dto.ValuationLineDTO{
			ID:              l.ID,
			Name:            l.Name,
			Ref:             l.Ref,
			ProductID:       l.ProductID,
			Quantity:        l.Quantity,
			PartnerID:       l.PartnerID.Ptr(),
			AccountID:       l.AccountID,
			Debit:           l.Debit,
			Credit:          l.Credit,
			OperatingUnitID: l.OperatingUnitID.Ptr(),
		})
	}
	return resp
}
