package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un producto o servicio facturable. Name único por empresa.
type Item struct {
	ID        string
	CompanyID string
	Name      string
	Code      string
	Details   string
	HSNSAC    string // código de clasificación HSN/SAC
	Qty       decimal.Decimal
	Rate      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
