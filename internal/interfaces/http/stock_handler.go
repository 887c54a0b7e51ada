package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/application/stockaccount"
)

// moveFinalizer lo implementa *stockaccount.ActionDoneUseCase.
type moveFinalizer interface {
	ActionDone(ctx context.Context, in stockaccount.ActionDoneInput) (*dto.ActionDoneResponse, error)
}

// linePreviewer lo implementa *stockaccount.PreviewLinesUseCase.
type linePreviewer interface {
	Preview(ctx context.Context, companyID, moveID string, in dto.ValuationLinesRequest) (*dto.ValuationLinesResponse, error)
}

// StockHandler finalización de movimientos y previsualización de apuntes (protegido).
type StockHandler struct {
	done    moveFinalizer
	preview linePreviewer
}

// NewStockHandler construye el handler.
func NewStockHandler(done moveFinalizer, preview linePreviewer) *StockHandler {
	return &StockHandler{done: done, preview: preview}
}

// ActionDone godoc
// @Summary      Finalizar movimientos de stock
// @Description  Marca los movimientos como hechos, genera capas de valoración y asientos
//
//	contables; los traslados entre unidades operativas generan además un asiento
//	de traslado por movimiento. Todo o nada.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActionDoneRequest  true  "move_ids, cancel_backorder"
// @Success      200   {object}  dto.ActionDoneResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/moves/done [post]
func (h *StockHandler) ActionDone(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	var in dto.ActionDoneRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.done.ActionDone(c.Context(), stockaccount.ActionDoneInput{
		CompanyID:       companyID,
		UserID:          GetUserID(c),
		MoveIDs:         in.MoveIDs,
		CancelBackorder: in.CancelBackorder,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PreviewLines godoc
// @Summary      Previsualizar apuntes de valoración
// @Description  Calcula los apuntes con su unidad operativa sin persistir nada.
//
//	Un movimiento entre unidades operativas distintas con cuentas distintas
//	responde 400 OU_ACCOUNT_MISMATCH.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del movimiento de stock"
// @Param        body  body  dto.ValuationLinesRequest  true  "valores y cuentas"
// @Success      200   {object}  dto.ValuationLinesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/moves/{id}/valuation-lines [post]
func (h *StockHandler) PreviewLines(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	var in dto.ValuationLinesRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.preview.Preview(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
