package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
)

// ModuleHandler catálogo y activación de addons por empresa.
type ModuleHandler struct {
	svc *usecase.ModuleService
}

// NewModuleHandler construye el handler.
func NewModuleHandler(svc *usecase.ModuleService) *ModuleHandler {
	return &ModuleHandler{svc: svc}
}

// List godoc
// @Summary      Catálogo de addons
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ModuleResponse
// @Router       /api/modules [get]
func (h *ModuleHandler) List(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	out, err := h.svc.List(c.Context(), companyID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar addon
// @Description  Un addon no instalable responde 400.
// @Tags         modules
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre técnico del addon"
// @Success      200   {object}  dto.ModuleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/modules/{name}/activate [post]
func (h *ModuleHandler) Activate(c *fiber.Ctx) error {
	companyID, ok, err := requireTenant(c)
	if !ok {
		return err
	}
	out, err := h.svc.Activate(c.Context(), companyID, c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
