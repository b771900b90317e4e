// Package xmlexport serializa facturas como documentos XML sin firma.
package xmlexport

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
)

const dateLayout = "2006-01-02T15:04:05.000Z"

// Renderer implementa billing.InvoiceXMLRenderer con beevik/etree.
type Renderer struct{}

// NewRenderer crea el renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// RenderInvoiceXML genera <Invoice> con emisor, cliente, líneas y totales.
func (r *Renderer) RenderInvoiceXML(doc *billing.InvoiceDocument) ([]byte, error) {
	if doc == nil || doc.Company == nil || len(doc.Rows) == 0 {
		return nil, fmt.Errorf("xmlexport: factura sin filas o sin empresa")
	}
	first := doc.Rows[0]

	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := x.CreateElement("Invoice")
	root.CreateAttr("number", doc.Number)
	root.CreateElement("IssueDate").SetText(first.InvoiceDate.UTC().Format(dateLayout))
	root.CreateElement("DueDate").SetText(first.DueDate)

	supplier := root.CreateElement("Supplier")
	supplier.CreateAttr("id", doc.Company.ID)
	addText(supplier, "Name", doc.Company.Name)
	addText(supplier, "GSTNumber", doc.Company.GSTNumber)
	addText(supplier, "PlaceOfSupply", doc.Company.PlaceOfSupply)
	addText(supplier, "Address", doc.Company.Address)
	addText(supplier, "State", doc.Company.State)
	addText(supplier, "Phone", doc.Company.Phone)
	addText(supplier, "Email", doc.Company.Email)

	if c := first.Customer; c != nil {
		customer := root.CreateElement("Customer")
		customer.CreateAttr("id", c.ID)
		addText(customer, "Name", c.Name)
		addText(customer, "Company", c.CustomerCompany)
		addText(customer, "GSTIN", c.GSTIN)
		addText(customer, "Address", c.Address)
		addText(customer, "State", c.State)
		addText(customer, "Phone", c.Phone)
		addText(customer, "Email", c.Email)
	}

	lines := root.CreateElement("Lines")
	var amount, total decimal.Decimal
	for i, row := range doc.Rows {
		line := lines.CreateElement("Line")
		line.CreateAttr("seq", fmt.Sprint(i+1))
		line.CreateAttr("id", row.ID)
		if it := row.Item; it != nil {
			item := line.CreateElement("Item")
			item.CreateAttr("id", it.ID)
			addText(item, "Name", it.ItemName)
			addText(item, "Code", it.ItemCode)
			addText(item, "HSNSAC", it.HSNSAC)
			addText(item, "Rate", it.Rate.String())
		}
		addText(line, "Qty", row.Qty.String())
		addText(line, "Discount", row.Discount.String())
		addText(line, "GST", row.GST.String())
		addText(line, "Amount", row.Amount.String())
		addText(line, "TotalAmount", row.TotalAmount.String())
		amount = amount.Add(row.Amount)
		total = total.Add(row.TotalAmount)
	}

	totals := root.CreateElement("Totals")
	addText(totals, "Amount", amount.StringFixed(2))
	addText(totals, "Tax", total.Sub(amount).StringFixed(2))
	addText(totals, "Total", total.StringFixed(2))

	x.Indent(2)
	var out bytes.Buffer
	if _, err := x.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: escribir documento: %w", err)
	}
	return out.Bytes(), nil
}

func addText(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

var _ billing.InvoiceXMLRenderer = (*Renderer)(nil)
