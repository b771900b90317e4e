package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
)

// DocumentUseCase genera el PDF o el XML de una factura de la empresa activa.
type DocumentUseCase struct {
	invoices  *InvoiceUseCase
	generator InvoicePDFGenerator
	renderer  InvoiceXMLRenderer
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(invoices *InvoiceUseCase, generator InvoicePDFGenerator, renderer InvoiceXMLRenderer) *DocumentUseCase {
	return &DocumentUseCase{invoices: invoices, generator: generator, renderer: renderer}
}

// DownloadPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
// domain.ErrNotFound si el número no tiene filas en la empresa activa.
func (uc *DocumentUseCase) DownloadPDF(ctx context.Context, userID, number string) ([]byte, string, error) {
	doc, err := uc.load(ctx, userID, number)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return out, fmt.Sprintf("invoice_%s.pdf", number), nil
}

// DownloadXML devuelve los bytes del XML y el nombre de archivo sugerido.
func (uc *DocumentUseCase) DownloadXML(ctx context.Context, userID, number string) ([]byte, string, error) {
	doc, err := uc.load(ctx, userID, number)
	if err != nil {
		return nil, "", err
	}
	out, err := uc.renderer.RenderInvoiceXML(doc)
	if err != nil {
		return nil, "", fmt.Errorf("xml: serialización fallida: %w", err)
	}
	return out, fmt.Sprintf("invoice_%s.xml", number), nil
}

func (uc *DocumentUseCase) load(ctx context.Context, userID, number string) (*InvoiceDocument, error) {
	rows, err := uc.invoices.GetByNumber(ctx, userID, number)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &InvoiceDocument{Number: number, Company: rows[0].Company, Rows: rows}, nil
}
