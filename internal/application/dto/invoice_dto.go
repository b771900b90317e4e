package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceAmounts importes de una fila de factura.
type InvoiceAmounts struct {
	Qty         decimal.Decimal `json:"qty"`
	Discount    decimal.Decimal `json:"discount"`
	GST         decimal.Decimal `json:"gst"`
	Amount      decimal.Decimal `json:"amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// InvoiceInput una fila del lote de create-invoice.
type InvoiceInput struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	DueDate       string `json:"due_date" validate:"required"`
	CustomerID    string `json:"customer_id" validate:"required"`
	ItemID        string `json:"item_id" validate:"required"`
	InvoiceAmounts
}

// CreateInvoiceRequest lote de filas que comparten la comprobación de número.
type CreateInvoiceRequest struct {
	Inputs []InvoiceInput `json:"inputs" validate:"required,min=1,dive"`
}

// InvoiceImport fila de importación; relaciones resueltas por nombre.
type InvoiceImport struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	InvoiceDate   string `json:"invoice_date" validate:"required"`
	DueDate       string `json:"due_date" validate:"required"`
	CompanyName   string `json:"companyName"`
	CustomerName  string `json:"customerName"`
	ItemName      string `json:"itemName"`
	InvoiceAmounts
}

// ImportInvoiceRequest cuerpo de import-invoice.
type ImportInvoiceRequest struct {
	Input InvoiceImport `json:"input" validate:"required"`
}

// InvoiceResponse salida de una fila de factura con referencias por id.
type InvoiceResponse struct {
	ID            string    `json:"_id"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	DueDate       string    `json:"due_date"`
	InvoiceAmounts
	Company  string `json:"company"`
	Customer string `json:"customer"`
	Item     string `json:"item"`
}

// InvoiceWithCustomer fila del listado por empresa con el nombre del cliente.
type InvoiceWithCustomer struct {
	InvoiceResponse
	CustomerName string `json:"customer_name"`
}

// InvoiceDetail fila de una factura con empresa, cliente e ítem completos.
type InvoiceDetail struct {
	ID            string    `json:"_id"`
	InvoiceNumber string    `json:"invoice_number"`
	InvoiceDate   time.Time `json:"invoice_date"`
	DueDate       string    `json:"due_date"`
	InvoiceAmounts
	Company  *CompanyResponse  `json:"company"`
	Customer *CustomerResponse `json:"customer"`
	Item     *ItemResponse     `json:"item"`
}

// InvoiceReportRow fila de reporte con nombres de relaciones y tarifa del ítem.
type InvoiceReportRow struct {
	InvoiceResponse
	Rate         decimal.Decimal `json:"rate"`
	CompanyName  string          `json:"companyName"`
	ItemName     string          `json:"itemName"`
	CustomerName string          `json:"customerName"`
	TypeName     string          `json:"__typename"`
}

// ReportFilter filtros opcionales de los reportes; vacío = sin filtro.
type ReportFilter struct {
	CompanyID  string `query:"companyId"`
	CustomerID string `query:"customerId"`
	ItemID     string `query:"itemId"`
}
