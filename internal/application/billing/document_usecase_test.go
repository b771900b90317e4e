package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

type captureRenderer struct {
	doc *InvoiceDocument
	err error
}

func (r *captureRenderer) GenerateInvoicePDF(_ context.Context, doc *InvoiceDocument) ([]byte, error) {
	r.doc = doc
	return []byte("%PDF-fake"), r.err
}

func (r *captureRenderer) RenderInvoiceXML(doc *InvoiceDocument) ([]byte, error) {
	r.doc = doc
	return []byte("<Invoice/>"), r.err
}

func TestDocument_Download(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	_, err := l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{
		l.row("INV-1", l.widget.ID),
		l.row("INV-1", l.gadget.ID),
	})
	require.NoError(t, err)

	r := &captureRenderer{}
	uc := NewDocumentUseCase(l.invoices, r, r)

	pdf, name, err := uc.DownloadPDF(ctx, testUser, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-1.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	require.NotNil(t, r.doc)
	assert.Equal(t, "Acme", r.doc.Company.Name)
	assert.Len(t, r.doc.Rows, 2)

	xml, name, err := uc.DownloadXML(ctx, testUser, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-1.xml", name)
	assert.Equal(t, []byte("<Invoice/>"), xml)
}

func TestDocument_Errors(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()
	r := &captureRenderer{}
	uc := NewDocumentUseCase(l.invoices, r, r)

	_, _, err := uc.DownloadPDF(ctx, testUser, "INV-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = l.invoices.CreateBatch(ctx, testUser, []dto.InvoiceInput{l.row("INV-1", l.widget.ID)})
	require.NoError(t, err)
	boom := errors.New("boom")
	r.err = boom
	_, _, err = uc.DownloadXML(ctx, testUser, "INV-1")
	assert.ErrorIs(t, err, boom)
}
