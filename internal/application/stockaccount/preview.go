package stockaccount

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/valuation"
)

// PreviewLinesUseCase calcula los apuntes de valoración de un movimiento con su unidad
// operativa imputada, sin persistir nada.
type PreviewLinesUseCase struct {
	repos Repos
}

// NewPreviewLinesUseCase construye el caso de uso con repos fuera de transacción.
func NewPreviewLinesUseCase(repos Repos) *PreviewLinesUseCase {
	return &PreviewLinesUseCase{repos: repos}
}

// Preview genera e imputa los apuntes. Devuelve domain.UserError si el movimiento cruza
// unidades operativas con cuentas distintas.
func (uc *PreviewLinesUseCase) Preview(ctx context.Context, companyID, moveID string, in dto.ValuationLinesRequest) (*dto.ValuationLinesResponse, error) {
	mv, err := uc.repos.Moves.GetByID(ctx, moveID)
	if err != nil {
		return nil, err
	}
	if mv == nil {
		return nil, domain.ErrNotFound
	}
	if mv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	m, err := loadMove(ctx, uc.repos, mv)
	if err != nil {
		return nil, err
	}

	qty := mv.EffectiveQuantity()
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	description := in.Description
	if description == "" {
		description = m.Product.DisplayName()
	}
	lines, err := valuation.ValuationLines(m, valuation.LineRequest{
		PartnerID:       mv.PartnerID,
		Quantity:        qty,
		DebitValue:      in.DebitValue,
		CreditValue:     in.CreditValue,
		DebitAccountID:  in.DebitAccountID,
		CreditAccountID: in.CreditAccountID,
		Description:     description,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.ValuationLinesResponse{StockMoveID: mv.ID}
	for _, l := range lines.All() {
		resp.Lines = append(resp.Lines, toPreviewLineDTO(l))
	}
	return resp, nil
}
