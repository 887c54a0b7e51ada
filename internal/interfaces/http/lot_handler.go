package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
)

// LotHandler consulta de lotes con existencias en una ubicación.
type LotHandler struct {
	uc *usecase.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *usecase.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// List godoc
// @Summary      Lotes disponibles en una ubicación
// @Description  Solo lotes con cantidad positiva. Requiere el addon stock_filter_prodlot_qty.
// @Tags         lots
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  true  "ID del producto"
// @Param        location_id  query  string  true  "ID de la ubicación"
// @Success      200  {array}   dto.LotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/lots [get]
func (h *LotHandler) List(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	var in dto.ListLotsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if ok, err := validateStruct(c, &in); !ok {
		return err
	}
	out, err := h.uc.ListForLocation(c.Context(), companyID, in.ProductID, in.LocationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
