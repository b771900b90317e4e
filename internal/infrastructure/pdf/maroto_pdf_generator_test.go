package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

func TestGenerateInvoicePDF(t *testing.T) {
	company := &dto.CompanyResponse{ID: "c1", Name: "Acme"}
	doc := &billing.InvoiceDocument{
		Number:  "INV-1",
		Company: company,
		Rows: []dto.InvoiceDetail{{
			ID:          "r1",
			InvoiceDate: time.Now(),
			DueDate:     "2024-02-01T00:00:00.000Z",
			InvoiceAmounts: dto.InvoiceAmounts{
				Qty:         decimal.NewFromInt(2),
				Amount:      decimal.NewFromInt(200),
				TotalAmount: decimal.NewFromInt(236),
			},
			Company:  company,
			Customer: &dto.CustomerResponse{Name: "Jane"},
			Item:     &dto.ItemResponse{ItemName: "Widget", Rate: decimal.NewFromInt(100)},
		}},
	}

	out, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_NoRows(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), &billing.InvoiceDocument{Number: "X"})
	assert.Error(t, err)
}

func TestMoney(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "25,000.00", g.money(decimal.NewFromInt(25000)))
	assert.Equal(t, "12.50", g.money(decimal.RequireFromString("12.5")))
}

func TestTotals(t *testing.T) {
	rows := []dto.InvoiceDetail{
		{InvoiceAmounts: dto.InvoiceAmounts{Amount: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(118)}},
		{InvoiceAmounts: dto.InvoiceAmounts{Amount: decimal.NewFromInt(50), TotalAmount: decimal.NewFromInt(56)}},
	}
	amount, gst, total := totals(rows)
	assert.True(t, amount.Equal(decimal.NewFromInt(150)))
	assert.True(t, gst.Equal(decimal.NewFromInt(24)))
	assert.True(t, total.Equal(decimal.NewFromInt(174)))
}
