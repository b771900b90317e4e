package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// ItemHandler maneja el catálogo de ítems.
type ItemHandler struct {
	uc      *usecase.ItemUseCase
	reports *analytics.ReportUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, reports *analytics.ReportUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, reports: reports}
}

// List godoc
// @Summary      Ítems de la empresa seleccionada
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /item/get-items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.ListForSelected(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Ítems de todas las empresas del usuario
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /item/get-all-items [get]
func (h *ItemHandler) ListAll(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.ListAll(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Crear ítem en la empresa seleccionada
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /item/add-item [post]
func (h *ItemHandler) Add(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Add(c.UserContext(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
		case errors.Is(err, domain.ErrDuplicate):
			return fail(c, fiber.StatusConflict, "DUPLICATE", "Item already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir ítem por id
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateItemRequest  true  "id + campos"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /item/update-item [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Item not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Borrar ítem sin facturas
// @Tags         items
// @Produce      json
// @Param        id   query  string  true  "ID del ítem"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /item/remove-item [delete]
func (h *ItemHandler) Remove(c *fiber.Ctx) error {
	err := h.uc.Remove(c.UserContext(), c.Query("id"))
	switch {
	case err == nil:
		return message(c, fiber.StatusOK, "Item removed successfully")
	case errors.Is(err, domain.ErrHasInvoices):
		return message(c, fiber.StatusOK, "Please first delete invoices related to item!")
	case errors.Is(err, domain.ErrItemNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Item not found")
	default:
		return internal(c, err)
	}
}

// Report godoc
// @Summary      Reporte de ítems
// @Tags         items
// @Produce      json
// @Param        companyId   query  string  false  "Empresa"
// @Param        itemId      query  string  false  "Ítem"
// @Success      200  {array}  dto.ItemReportRow
// @Router       /item/get-items-report [get]
func (h *ItemHandler) Report(c *fiber.Ctx) error {
	var f dto.ReportFilter
	if err := c.QueryParser(&f); err != nil {
		return internal(c, err)
	}
	out, err := h.reports.ItemsReport(c.UserContext(), userResolver(c), f)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return message(c, fiber.StatusOK, "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar ítems del usuario
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ItemReportRow
// @Router       /item/get-items-export [get]
func (h *ItemHandler) Export(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.reports.ItemsExport(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar ítem (empresa por nombre)
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ImportItemRequest  true  "input"
// @Success      201   {object}  dto.ItemResponse
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /item/import-item [post]
func (h *ItemHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportItemRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Import(c.UserContext(), userID, in.Input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
		case errors.Is(err, domain.ErrDuplicate):
			return message(c, fiber.StatusOK, "Item already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
