package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// InvoiceHandler maneja el libro de facturas de la empresa seleccionada.
type InvoiceHandler struct {
	uc        *billing.InvoiceUseCase
	documents *billing.DocumentUseCase
	reports   *analytics.ReportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, documents *billing.DocumentUseCase, reports *analytics.ReportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, documents: documents, reports: reports}
}

// Create godoc
// @Summary      Crear lote de filas de factura
// @Description  Solo se comprueba el número de la primera fila.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "inputs"
// @Success      200   {array}   dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /invoice/create-invoice [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := bind(c, &in); err != nil {
		return internal(c, err)
	}
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.CreateBatch(c.UserContext(), userID, in.Inputs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCompanyNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
		case errors.Is(err, domain.ErrDuplicate):
			return fail(c, fiber.StatusConflict, "DUPLICATE", "Invoice already exists!")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Filas de factura de la empresa seleccionada con nombre del cliente
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.InvoiceWithCustomer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/get-invoice-by-company [get]
func (h *InvoiceHandler) ListByCompany(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), userID)
	if err != nil {
		return h.companyError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Borrar todas las filas de un número
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        invoice_number  query  string  true  "Número de factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/remove-invoice [delete]
func (h *InvoiceHandler) Remove(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	if err := h.uc.RemoveBatch(c.UserContext(), userID, c.Query("invoice_number")); err != nil {
		return h.companyError(c, err)
	}
	return message(c, fiber.StatusOK, "Invoices removed successfully")
}

// Get godoc
// @Summary      Filas de un número con empresa, cliente e ítem completos
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        invoice_number  query  string  true  "Número de factura"
// @Success      200  {array}   dto.InvoiceDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/get-invoice [get]
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.uc.GetByNumber(c.UserContext(), userID, c.Query("invoice_number"))
	if err != nil {
		return h.companyError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        invoice_number  query  string  true  "Número de factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/get-invoice-pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, filename, err := h.documents.DownloadPDF(c.UserContext(), userID, c.Query("invoice_number"))
	if err != nil {
		return h.documentError(c, err)
	}
	c.Attachment(filename)
	return c.Send(out)
}

// XML godoc
// @Summary      Descargar la factura en XML
// @Tags         invoices
// @Produce      application/xml
// @Security     BearerAuth
// @Param        invoice_number  query  string  true  "Número de factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/get-invoice-xml [get]
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, filename, err := h.documents.DownloadXML(c.UserContext(), userID, c.Query("invoice_number"))
	if err != nil {
		return h.documentError(c, err)
	}
	c.Attachment(filename)
	return c.Send(out)
}

// Report godoc
// @Summary      Reporte de facturas
// @Tags         invoices
// @Produce      json
// @Param        companyId   query  string  false  "Empresa"
// @Param        customerId  query  string  false  "Cliente"
// @Param        itemId      query  string  false  "Ítem"
// @Success      200  {array}   dto.InvoiceReportRow
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/get-invoices-report [get]
func (h *InvoiceHandler) Report(c *fiber.Ctx) error {
	var f dto.ReportFilter
	if err := c.QueryParser(&f); err != nil {
		return internal(c, err)
	}
	out, err := h.reports.InvoicesReport(c.UserContext(), userResolver(c), f)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar facturas del usuario
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.InvoiceReportRow
// @Router       /invoice/get-invoices-export [get]
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	userID, err := CurrentUser(c)
	if err != nil {
		return internal(c, err)
	}
	out, err := h.reports.InvoicesExport(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrCompaniesNotFound) {
			return message(c, fiber.StatusOK, "Companies not found")
		}
		return internal(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar fila de factura (relaciones por nombre)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ImportInvoiceRequest  true  "input"
// @Success      201   {object}  dto.InvoiceResponse
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoice/import-invoice [post]
func (h *InvoiceHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportInvoiceRequest
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
		case errors.Is(err, domain.ErrItemNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Item not found")
		case errors.Is(err, domain.ErrCustomerNotFound):
			return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Customer not found")
		case errors.Is(err, domain.ErrDuplicate):
			return message(c, fiber.StatusOK, "Invoice already exists!")
		}
		return internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *InvoiceHandler) companyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrCompanyNotFound) {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Company not found")
	}
	return internal(c, err)
}

func (h *InvoiceHandler) documentError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Invoice not found")
	}
	return h.companyError(c, err)
}
