package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	reports *analytics.ReportUseCase
}

// NewCompanyHandler construye el handler inyectando los casos de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase, reports *analytics.ReportUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, reports: reports}
}

// ExistingFlag godoc
// @Summary      Flag company_existing del usuario
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyExistingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company/get-company-existing-flag [get]
func (h *CompanyHandler) ExistingFlag(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.ExistingFlag(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa (queda seleccionada)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /company/create-company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return fail(c, fiber.StatusConflict, "DUPLICATE", "Company already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Empresas del usuario
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CompanyResponse
// @Router       /company/get-companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.List(c.UserContext(), userID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// GetSelected godoc
// @Summary      Empresa seleccionada (null si no hay)
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyResponse
// @Router       /company/get-selected-company [get]
func (h *CompanyHandler) GetSelected(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.GetSelected(c.UserContext(), userID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// Select godoc
// @Summary      Cambiar la empresa seleccionada por nombre
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SelectCompanyRequest  true  "company_name"
// @Success      200   {object}  dto.CompanyResponse
// @Router       /company/update-selected-company [post]
func (h *CompanyHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectCompanyRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Select(c.UserContext(), userID, in.CompanyName)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Sobrescribir empresa por id
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "id + campos"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /company/update-company [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Borrar empresa sin dependencias
// @Description  Las dependencias y los errores internos responden 200 con mensaje.
// @Tags         companies
// @Produce      json
// @Param        id   query  string  true  "ID de la empresa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /company/remove-company [delete]
func (h *CompanyHandler) Remove(c *fiber.Ctx) error {
	err := h.uc.Remove(c.UserContext(), c.Query("id"))
	switch {
	case err == nil:
		return message(c, fiber.StatusOK, "Company removed successfully")
	case errors.Is(err, domain.ErrHasInvoices):
		return message(c, fiber.StatusOK, "Please first delete invoices related to company!")
	case errors.Is(err, domain.ErrHasItems):
		return message(c, fiber.StatusOK, "Please first delete items related to company!")
	case errors.Is(err, domain.ErrHasCustomers):
		return message(c, fiber.StatusOK, "Please first delete customers related to company!")
	case errors.Is(err, domain.ErrCompanyNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
	default:
		return message(c, fiber.StatusOK, err.Error())
	}
}

// Report godoc
// @Summary      Reporte de empresas
// @Description  Precedencia: companyId, customerId, itemId, token.
// @Tags         companies
// @Produce      json
// @Param        companyId   query  string  false  "Empresa"
// @Param        customerId  query  string  false  "Cliente"
// @Param        itemId      query  string  false  "Ítem"
// @Success      200  {array}  dto.CompanyReportRow
// @Router       /company/get-companies-report [get]
func (h *CompanyHandler) Report(c *fiber.Ctx) error {
	var f dto.ReportFilter
	if err := c.QueryParser(&f); err != nil {
		return internal(c, err)
	}
	out, err := h.reports.CompaniesReport(c.UserContext(), userResolver(c), f)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar empresas del usuario
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CompanyReportRow
// @Router       /company/get-companies-export [get]
func (h *CompanyHandler) Export(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.reports.CompaniesExport(c.UserContext(), userID)
	if err != nil {
		return internal(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ImportCompanyRequest  true  "input"
// @Success      201   {object}  dto.CompanyResponse
// @Success      200   {object}  dto.MessageResponse
// @Router       /company/import-company [post]
func (h *CompanyHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportCompanyRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Import(c.UserContext(), userID, in.Input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return message(c, fiber.StatusOK, "Company already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
