package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
)

// accountMoveReader lo implementa *stockaccount.AccountMoveUseCase.
type accountMoveReader interface {
	GetByID(ctx context.Context, companyID, id string) (*dto.AccountMoveResponse, error)
	GeneratePDF(ctx context.Context, companyID, id string) ([]byte, string, error)
}

// AccountMoveHandler consulta de asientos contables y su comprobante PDF.
type AccountMoveHandler struct {
	uc accountMoveReader
}

// NewAccountMoveHandler construye el handler.
func NewAccountMoveHandler(uc accountMoveReader) *AccountMoveHandler {
	return &AccountMoveHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener asiento contable
// @Tags         account-moves
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del asiento"
// @Success      200  {object}  dto.AccountMoveResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-moves/{id} [get]
func (h *AccountMoveHandler) GetByID(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Comprobante PDF del asiento
// @Tags         account-moves
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del asiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/account-moves/{id}/pdf [get]
func (h *AccountMoveHandler) PDF(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	body, name, err := h.uc.GeneratePDF(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(body)
}
