package entity

import "time"

// Customer representa un cliente de la empresa (facturación). Email único por empresa.
type Customer struct {
	ID              string
	CompanyID       string
	Name            string
	Email           string
	Phone           string
	CustomerCompany string // razón social propia del cliente (texto libre)
	GSTIN           string
	State           string
	Address         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
