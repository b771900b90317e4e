package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una fila de factura. Varias filas comparten InvoiceNumber dentro de una empresa
// (una por ítem facturado).
type Invoice struct {
	ID            string
	CompanyID     string
	CustomerID    string
	ItemID        string
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       string // fecha normalizada ISO-8601 (UTC)
	Qty           decimal.Decimal
	Discount      decimal.Decimal
	GST           decimal.Decimal
	Amount        decimal.Decimal
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceView es una fila de factura con los nombres de sus relaciones ya resueltos.
type InvoiceView struct {
	Invoice
	CompanyName  string
	CustomerName string
	ItemName     string
	Rate         decimal.Decimal
}
