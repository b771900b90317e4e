package billing

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

// InvoiceDocument datos de una factura (todas las filas de un número) listos para renderizar.
type InvoiceDocument struct {
	Number  string
	Company *dto.CompanyResponse
	Rows    []dto.InvoiceDetail
}

// InvoicePDFGenerator genera la representación gráfica de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// InvoiceXMLRenderer serializa una factura como documento XML.
type InvoiceXMLRenderer interface {
	RenderInvoiceXML(doc *InvoiceDocument) ([]byte, error)
}
