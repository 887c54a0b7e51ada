package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
)

// OperatingUnitHandler maneja las unidades operativas de la empresa.
type OperatingUnitHandler struct {
	uc *usecase.OperatingUnitUseCase
}

// NewOperatingUnitHandler construye el handler.
func NewOperatingUnitHandler(uc *usecase.OperatingUnitUseCase) *OperatingUnitHandler {
	return &OperatingUnitHandler{uc: uc}
}

// Create godoc
// @Summary      Crear unidad operativa
// @Tags         operating-units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOperatingUnitRequest  true  "code, name"
// @Success      201   {object}  dto.OperatingUnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operating-units [post]
func (h *OperatingUnitHandler) Create(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	var in dto.CreateOperatingUnitRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener unidad operativa
// @Tags         operating-units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad operativa"
// @Success      200  {object}  dto.OperatingUnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operating-units/{id} [get]
func (h *OperatingUnitHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar unidades operativas
// @Tags         operating-units
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.OperatingUnitListResponse
// @Router       /api/operating-units [get]
func (h *OperatingUnitHandler) List(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	p := page(c)
	out, err := h.uc.List(c.Context(), companyID, p.Limit, p.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
