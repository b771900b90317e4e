package xmlexport

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

func TestRenderInvoiceXML(t *testing.T) {
	company := &dto.CompanyResponse{ID: "c1", Name: "Acme", GSTNumber: "27ABCDE"}
	customer := &dto.CustomerResponse{ID: "cu1", Name: "Jane", Email: "jane@x.io"}
	row := func(id, total string) dto.InvoiceDetail {
		return dto.InvoiceDetail{
			ID:            id,
			InvoiceNumber: "INV-1",
			InvoiceDate:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			DueDate:       "2024-02-01T00:00:00.000Z",
			InvoiceAmounts: dto.InvoiceAmounts{
				Qty:         decimal.NewFromInt(1),
				Amount:      decimal.NewFromInt(100),
				TotalAmount: decimal.RequireFromString(total),
			},
			Company:  company,
			Customer: customer,
			Item:     &dto.ItemResponse{ID: "it-" + id, ItemName: "Widget", Rate: decimal.NewFromInt(100)},
		}
	}
	doc := &billing.InvoiceDocument{Number: "INV-1", Company: company, Rows: []dto.InvoiceDetail{row("r1", "118"), row("r2", "112")}}

	out, err := NewRenderer().RenderInvoiceXML(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	root := parsed.Root()
	require.NotNil(t, root)
	assert.Equal(t, "INV-1", root.SelectAttrValue("number", ""))
	assert.Equal(t, "2024-01-02T03:04:05.000Z", root.FindElement("IssueDate").Text())
	assert.Equal(t, "Acme", root.FindElement("Supplier/Name").Text())
	assert.Equal(t, "Jane", root.FindElement("Customer/Name").Text())
	assert.Len(t, root.FindElements("Lines/Line"), 2)
	assert.Equal(t, "230.00", root.FindElement("Totals/Total").Text())
	assert.Equal(t, "30.00", root.FindElement("Totals/Tax").Text())
}

func TestRenderInvoiceXML_Empty(t *testing.T) {
	_, err := NewRenderer().RenderInvoiceXML(&billing.InvoiceDocument{Number: "X"})
	assert.Error(t, err)
}
