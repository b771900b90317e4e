package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// CustomerHandler maneja el catálogo de clientes.
type CustomerHandler struct {
	uc      *billing.CustomerUseCase
	reports *analytics.ReportUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, reports *analytics.ReportUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc, reports: reports}
}

// List godoc
// @Summary      Clientes de la empresa seleccionada
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customer/get-customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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
// @Summary      Clientes de todas las empresas del usuario
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customer/get-all-customers [get]
func (h *CustomerHandler) ListAll(c *fiber.Ctx) error {
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
// @Summary      Crear cliente en la empresa seleccionada
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customer/add-customer [post]
func (h *CustomerHandler) Add(c *fiber.Ctx) error {
	var in dto.CustomerRequest
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
			return fail(c, fiber.StatusConflict, "DUPLICATE", "Customer already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir cliente por id
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCustomerRequest  true  "id + campos"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customer/update-customer [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Customer not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Borrar cliente sin facturas
// @Tags         customers
// @Produce      json
// @Param        id   query  string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customer/remove-customer [delete]
func (h *CustomerHandler) Remove(c *fiber.Ctx) error {
	err := h.uc.Remove(c.UserContext(), c.Query("id"))
	switch {
	case err == nil:
		return message(c, fiber.StatusOK, "Customer removed successfully")
	case errors.Is(err, domain.ErrHasInvoices):
		return message(c, fiber.StatusOK, "Please first delete invoices related to customer!")
	case errors.Is(err, domain.ErrCustomerNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Customer not found")
	default:
		return internal(c, err)
	}
}

// Report godoc
// @Summary      Reporte de clientes
// @Tags         customers
// @Produce      json
// @Param        companyId   query  string  false  "Empresa"
// @Param        customerId  query  string  false  "Cliente"
// @Success      200  {array}  dto.CustomerReportRow
// @Router       /customer/get-customers-report [get]
func (h *CustomerHandler) Report(c *fiber.Ctx) error {
	var f dto.ReportFilter
	if err := c.QueryParser(&f); err != nil {
		return internal(c, err)
	}
	out, err := h.reports.CustomersReport(c.UserContext(), userResolver(c), f)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return message(c, fiber.StatusOK, "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar clientes del usuario
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CustomerReportRow
// @Router       /customer/get-customers-export [get]
func (h *CustomerHandler) Export(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.reports.CustomersExport(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return message(c, fiber.StatusOK, "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar cliente (empresa por nombre)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ImportCustomerRequest  true  "input"
// @Success      201   {object}  dto.CustomerResponse
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customer/import-customer [post]
func (h *CustomerHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportCustomerRequest
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
			return message(c, fiber.StatusOK, "Customer already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
